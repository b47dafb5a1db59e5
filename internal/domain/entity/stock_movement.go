package entity

import "time"

// Tipos de movimiento de stock. El libro solo conoce entradas y salidas;
// traslados y recepciones de compra se registran como pares/lotes de estos.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement es un asiento inmutable del libro de inventario.
// Quantity es siempre positiva; el sentido lo da Type. El stock actual de un
// repuesto es sum(in) - sum(out) y puede quedar negativo si los datos de
// origen son inconsistentes: aquí no se recorta.
type StockMovement struct {
	ID         string
	CompanyID  string
	PartID     string
	StoreID    string
	Type       string // in, out
	Quantity   int64
	Reference  string // orden de compra, traslado, ajuste, etc.
	Notes      string
	OccurredAt time.Time
	CreatedAt  time.Time
	CreatedBy  string // UserID
}
