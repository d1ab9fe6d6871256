package adapter

import (
	"context"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// SaleSource reads sales from the Record Service.
type SaleSource interface {
	// FetchAll returns the full record set.
	FetchAll(ctx context.Context) ([]*entity.Sale, error)

	// FetchByID returns one sale or a not-found error.
	FetchByID(ctx context.Context, id uint) (*entity.Sale, error)
}
