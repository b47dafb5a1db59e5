package entity

import "time"

// Supplier proveedor de repuestos (módulo de compras).
type Supplier struct {
	ID          string
	CompanyID   string
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
