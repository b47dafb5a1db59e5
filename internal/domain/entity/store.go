package entity

import "time"

// Store representa un almacén o bodega física donde se guarda stock.
type Store struct {
	ID        string
	CompanyID string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
