package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// GetSaleDetailInput represents the input for the detail page.
type GetSaleDetailInput struct {
	ID uint
}

// GetSaleDetailOutput represents the output of the detail page lookup.
type GetSaleDetailOutput struct {
	Sale *entity.Sale
}

// GetSaleDetailUseCase loads a single record from the Record Service.
type GetSaleDetailUseCase struct {
	source adapter.SaleSource
}

// NewGetSaleDetailUseCase creates a new GetSaleDetailUseCase instance.
func NewGetSaleDetailUseCase(source adapter.SaleSource) *GetSaleDetailUseCase {
	return &GetSaleDetailUseCase{
		source: source,
	}
}

// Execute returns the sale or a not-found SaleError.
func (uc *GetSaleDetailUseCase) Execute(ctx context.Context, input GetSaleDetailInput) (*GetSaleDetailOutput, error) {
	sale, err := uc.source.FetchByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleNotFoundError()
		}
		return nil, fmt.Errorf("failed to fetch sale: %w", err)
	}

	return &GetSaleDetailOutput{
		Sale: sale,
	}, nil
}
