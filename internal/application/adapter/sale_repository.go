// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale and assigns its ID.
	Create(ctx context.Context, sale *entity.Sale) error

	// CreateBatch inserts many sales at once.
	CreateBatch(ctx context.Context, sales []*entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Sale, error)

	// FindAll retrieves every sale ordered by date descending.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// Update updates an existing sale.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale.
	Delete(ctx context.Context, id uint) error

	// DeleteAll removes every sale and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
