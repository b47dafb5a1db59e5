package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest body para POST /api/parts.
type CreatePartRequest struct {
	PartNo       string          `json:"part_no"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id,omitempty"`
	BrandID      string          `json:"brand_id,omitempty"`
	UnitMeasure  string          `json:"unit_measure,omitempty"`
	Origin       string          `json:"origin,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	ReorderPoint int64           `json:"reorder_point"`
}

// UpdatePartRequest body para PUT /api/parts/:id (campos opcionales).
type UpdatePartRequest struct {
	Description  *string          `json:"description,omitempty"`
	CategoryID   *string          `json:"category_id,omitempty"`
	BrandID      *string          `json:"brand_id,omitempty"`
	UnitMeasure  *string          `json:"unit_measure,omitempty"`
	Origin       *string          `json:"origin,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ReorderPoint *int64           `json:"reorder_point,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

// PartResponse representación HTTP de un repuesto.
type PartResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	PartNo       string          `json:"part_no"`
	Description  string          `json:"description"`
	CategoryID   string          `json:"category_id,omitempty"`
	BrandID      string          `json:"brand_id,omitempty"`
	UnitMeasure  string          `json:"unit_measure,omitempty"`
	Origin       string          `json:"origin,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	ReorderPoint int64           `json:"reorder_point"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PartListResponse listado paginado de repuestos.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// NameRequest body para crear/renombrar categorías, marcas y bodegas.
type NameRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"` // solo bodegas
}

// NamedResponse categoría, marca o bodega.
type NamedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
