// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/integration/persistence/model"
)

const batchSize = 100

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create inserts a sale and writes the assigned ID back to the entity.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	if err := r.db.WithContext(ctx).Create(saleModel).Error; err != nil {
		return err
	}
	sale.ID = saleModel.ID
	sale.CreatedAt = saleModel.CreatedAt
	sale.UpdatedAt = saleModel.UpdatedAt
	return nil
}

// CreateBatch inserts sales in chunks inside a single transaction.
func (r *saleRepository) CreateBatch(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	models := make([]*model.SaleModel, len(sales))
	for i, s := range sales {
		models[i] = model.SaleFromEntity(s)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(models, batchSize).Error
	})
	if err != nil {
		return err
	}

	for i, m := range models {
		sales[i].ID = m.ID
		sales[i].CreatedAt = m.CreatedAt
		sales[i].UpdatedAt = m.UpdatedAt
	}
	return nil
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindAll retrieves every sale, most recent date first.
func (r *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToEntity()
	}
	return sales, nil
}

// Update writes every column of an existing sale.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).
		Model(&model.SaleModel{ID: sale.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(saleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	sale.UpdatedAt = saleModel.UpdatedAt
	return nil
}

// Delete removes a sale permanently.
func (r *saleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.SaleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	return nil
}

// DeleteAll removes every sale and reports how many were removed.
func (r *saleRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.SaleModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
