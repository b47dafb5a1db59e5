package repository

import "github.com/tu-usuario/repuestos-erp/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra (DIP). Create y Update persisten también los renglones (Items).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	// GetByID devuelve la orden con sus renglones cargados.
	GetByID(id string) (*entity.PurchaseOrder, error)
	// ListByCompany lista órdenes sin renglones; status vacío = todas.
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	// Update reemplaza cabecera y renglones; el use case garantiza que la
	// orden siga en draft.
	Update(order *entity.PurchaseOrder) error
	UpdateStatus(id, status string) error
	Delete(id string) error
	CountByCompany(companyID string) (int, error)
}
