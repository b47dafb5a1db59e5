package entity

import "time"

// Category agrupa repuestos por familia (filtros de catálogo y análisis).
type Category struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}

// Brand marca/fabricante de un repuesto.
type Brand struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}
