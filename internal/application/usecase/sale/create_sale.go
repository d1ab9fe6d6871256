package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	Product  string
	Category string
	Amount   *decimal.Decimal
	Region   *string // Optional
	Date     *string // Optional, defaults to now
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase handles sale creation logic.
type CreateSaleUseCase struct {
	saleRepo adapter.SaleRepository
	now      func() time.Time
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

// Execute validates the payload and stores the new sale.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	var problems issues
	date := problems.checkCreate(input)
	if err := problems.err(); err != nil {
		return nil, err
	}

	if date == nil {
		now := uc.now().UTC()
		date = &now
	}

	sale := entity.NewSale(input.Product, input.Category, *input.Amount, input.Region, date.UTC())

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &CreateSaleOutput{
		Sale: sale,
	}, nil
}
