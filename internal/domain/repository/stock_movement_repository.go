package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

// MovementFilter filtros del listado de movimientos.
type MovementFilter struct {
	PartID  string
	StoreID string
	Type    string // in, out; vacío = ambos
	From    *time.Time
	To      *time.Time
}

// StockSums sumas de entradas y salidas de un repuesto (el balance es In - Out).
type StockSums struct {
	PartID string
	In     int64
	Out    int64
}

// Balance devuelve el stock actual derivado del libro. Sin recorte: negativo
// si los datos de origen son inconsistentes.
func (s StockSums) Balance() int64 { return s.In - s.Out }

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos (DIP). Los asientos son inmutables: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(ctx context.Context, companyID string, filter MovementFilter, limit, offset int) ([]*entity.StockMovement, error)
	// ListByPartIDs trae el libro completo de los repuestos indicados; lo usa
	// el análisis de rotación, que necesita cantidades y fechas crudas.
	ListByPartIDs(ctx context.Context, partIDs []string) ([]*entity.StockMovement, error)
	SumsByPart(ctx context.Context, partID string) (StockSums, error)
	// SumsByPartAndStore limita las sumas a una bodega; lo usan los traslados
	// para validar disponibilidad en la bodega origen.
	SumsByPartAndStore(ctx context.Context, partID, storeID string) (StockSums, error)
	SumsByCompany(ctx context.Context, companyID string) ([]StockSums, error)
}
