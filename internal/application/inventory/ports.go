package inventory

import (
	"context"

	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de movimientos atado a esa tx. Garantiza que los dos asientos
// de un traslado se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.StockMovementRepository) error) error
}

// MovementPublisher puerto de salida para notificar movimientos registrados a
// sistemas externos (broker de eventos). Puede no estar configurado: el use
// case tolera un publicador nil y los fallos de publicación nunca revierten
// el asiento ya confirmado.
type MovementPublisher interface {
	PublishMovementRecorded(ctx context.Context, event dto.MovementRecordedEvent) error
}
