package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un repuesto en el catálogo.
const (
	PartStatusActive   = "active"
	PartStatusInactive = "inactive"
)

// Part representa un repuesto del catálogo (item master).
// Cost es el costo unitario usado para valorizar stock; el stock en sí no vive
// aquí: se deriva siempre del libro de movimientos (sum in - sum out).
type Part struct {
	ID           string
	CompanyID    string
	PartNo       string // número de parte, único por empresa
	Description  string
	CategoryID   string
	BrandID      string
	UnitMeasure  string // unidad de medida (ej. "EA", "SET")
	Origin       string // país/origen del fabricante
	Cost         decimal.Decimal
	Price        decimal.Decimal
	ReorderPoint int64
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
