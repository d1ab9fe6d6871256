package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// CreateSaleRequest represents the request body for sale creation.
// Amount accepts a JSON number or a numeric string.
type CreateSaleRequest struct {
	Product  string           `json:"product" binding:"required,min=3"`
	Category string           `json:"category" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Region   *string          `json:"region,omitempty"`
	Date     *string          `json:"date,omitempty"`
}

// UpdateSaleRequest represents the request body for a partial sale update.
// An explicit null region clears it.
type UpdateSaleRequest struct {
	Product  *string          `json:"product,omitempty" binding:"omitempty,min=3"`
	Category *string          `json:"category,omitempty" binding:"omitempty,min=1"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Region   NullableString   `json:"region"`
	Date     *string          `json:"date,omitempty"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID        uint            `json:"id"`
	Product   string          `json:"product"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Region    *string         `json:"region"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		Product:   s.Product,
		Category:  s.Category,
		Amount:    s.Amount,
		Region:    s.Region,
		Date:      s.Date,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSaleListResponse converts a list of domain Sale entities to a SaleListResponse DTO.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(s)
	}
	return SaleListResponse{Sales: out}
}

// ToEntity converts a SaleResponse back into a domain Sale.
func (r SaleResponse) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:        r.ID,
		Product:   r.Product,
		Category:  r.Category,
		Amount:    r.Amount,
		Region:    r.Region,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
