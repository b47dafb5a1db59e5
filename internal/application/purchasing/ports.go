package purchasing

import (
	"context"

	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, con los
// repositorios de movimientos y de órdenes atados a esa tx. La recepción de
// una orden (asientos IN + cambio de estado) debe ser atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.StockMovementRepository, poRepo repository.PurchaseOrderRepository) error) error
}
