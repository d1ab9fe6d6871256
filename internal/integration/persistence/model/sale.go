// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Product   string          `gorm:"type:varchar(255);not null;index"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Region    *string         `gorm:"type:varchar(100)"`
	Date      time.Time       `gorm:"not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:        m.ID,
		Product:   m.Product,
		Category:  m.Category,
		Amount:    m.Amount,
		Region:    m.Region,
		Date:      m.Date.UTC(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:        sale.ID,
		Product:   sale.Product,
		Category:  sale.Category,
		Amount:    sale.Amount,
		Region:    sale.Region,
		Date:      sale.Date.UTC(),
		CreatedAt: sale.CreatedAt,
		UpdatedAt: sale.UpdatedAt,
	}
}
