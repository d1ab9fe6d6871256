package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// GetSaleInput represents the input for fetching one sale.
type GetSaleInput struct {
	ID uint
}

// GetSaleOutput represents the output of fetching one sale.
type GetSaleOutput struct {
	Sale *entity.Sale
}

// GetSaleUseCase handles fetching a single sale.
type GetSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewGetSaleUseCase creates a new GetSaleUseCase instance.
func NewGetSaleUseCase(saleRepo adapter.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute returns the sale or a not-found error.
func (uc *GetSaleUseCase) Execute(ctx context.Context, input GetSaleInput) (*GetSaleOutput, error) {
	sale, err := findSale(ctx, uc.saleRepo, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetSaleOutput{
		Sale: sale,
	}, nil
}

// findSale maps a repository miss to the domain not-found error.
func findSale(ctx context.Context, repo adapter.SaleRepository, id uint) (*entity.Sale, error) {
	sale, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleNotFoundError()
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	return sale, nil
}
