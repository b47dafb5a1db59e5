package entity

import "time"

// Company perfil de la empresa dueña de los datos (multi-tenant por company_id).
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
