package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// UpdateSaleInput represents the input for a partial sale update.
// Nil fields are left unchanged. RegionSet with a nil Region clears the region.
type UpdateSaleInput struct {
	ID        uint
	Product   *string
	Category  *string
	Amount    *decimal.Decimal
	RegionSet bool
	Region    *string
	Date      *string
}

// UpdateSaleOutput represents the output of a sale update.
type UpdateSaleOutput struct {
	Sale *entity.Sale
}

// UpdateSaleUseCase handles partial sale updates.
type UpdateSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute validates the provided fields and applies them to the stored sale.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	// Validate only what was sent
	var problems issues
	date := problems.checkUpdate(input)
	if err := problems.err(); err != nil {
		return nil, err
	}

	sale, err := findSale(ctx, uc.saleRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Product != nil {
		sale.Product = *input.Product
	}
	if input.Category != nil {
		sale.Category = *input.Category
	}
	if input.Amount != nil {
		sale.Amount = *input.Amount
	}
	if input.RegionSet {
		sale.Region = input.Region
	}
	if date != nil {
		sale.Date = date.UTC()
	}
	sale.UpdatedAt = time.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	return &UpdateSaleOutput{
		Sale: sale,
	}, nil
}
