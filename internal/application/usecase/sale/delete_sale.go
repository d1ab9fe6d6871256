package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	ID uint
}

// DeleteSaleUseCase handles sale deletion.
type DeleteSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute removes the sale or reports that it does not exist.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) error {
	if err := uc.saleRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return domainerror.NewSaleNotFoundError()
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}
