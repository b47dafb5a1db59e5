package repository

import (
	"time"

	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

// VoucherFilter filtros del listado de comprobantes.
type VoucherFilter struct {
	Type string // receipt, payment; vacío = ambos
	From *time.Time
	To   *time.Time
}

// VoucherRepository define el puerto de persistencia para Voucher (DIP).
type VoucherRepository interface {
	Create(voucher *entity.Voucher) error
	GetByID(id string) (*entity.Voucher, error)
	ListByCompany(companyID string, filter VoucherFilter, limit, offset int) ([]*entity.Voucher, error)
	Delete(id string) error
	// CountByCompanyAndType alimenta la numeración secuencial RV-/PV-.
	CountByCompanyAndType(companyID, voucherType string) (int, error)
}
