package repository

import (
	"context"

	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

// PartFilter filtros del listado de repuestos.
type PartFilter struct {
	Search     string // contiene, sobre part_no y description
	CategoryID string
	BrandID    string
	Status     string // active, inactive; vacío = todos
}

// PartRepository define el puerto de persistencia para Part (DIP).
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	GetByCompanyAndPartNo(companyID, partNo string) (*entity.Part, error)
	Update(part *entity.Part) error
	Delete(id string) error
	List(companyID string, filter PartFilter, limit, offset int) ([]*entity.Part, error)
	// ListActiveByCompany devuelve todos los repuestos activos de la empresa;
	// lo usa el análisis de rotación, que clasifica el catálogo completo.
	ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Part, error)
}
