// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a single sale record held by the Record Service.
type Sale struct {
	ID        uint
	Product   string
	Category  string
	Amount    decimal.Decimal
	Region    *string // Optional, nil when the sale has no region
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSale creates a new Sale entity. The ID is assigned on persistence.
func NewSale(
	product string,
	category string,
	amount decimal.Decimal,
	region *string,
	date time.Time,
) *Sale {
	now := time.Now().UTC()

	return &Sale{
		Product:   product,
		Category:  category,
		Amount:    amount,
		Region:    region,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RegionOrEmpty returns the region, or an empty string when absent.
func (s *Sale) RegionOrEmpty() string {
	if s.Region == nil {
		return ""
	}
	return *s.Region
}
