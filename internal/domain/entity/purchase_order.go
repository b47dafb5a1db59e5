package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de compra.
const (
	POStatusDraft     = "draft"
	POStatusOrdered   = "ordered"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder orden de compra a un proveedor. Al recibirse genera un
// movimiento IN por cada renglón, en la misma transacción del cambio de estado.
type PurchaseOrder struct {
	ID           string
	CompanyID    string
	OrderNo      string // PO-00001, secuencial por empresa
	SupplierID   string
	StoreID      string // bodega destino de la recepción
	Status       string
	ExpectedDate time.Time
	Notes        string
	Total        decimal.Decimal
	Items        []PurchaseOrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    string
}

// PurchaseOrderItem renglón de una orden de compra.
type PurchaseOrderItem struct {
	ID       string
	OrderID  string
	PartID   string
	Quantity int64
	UnitCost decimal.Decimal
	Subtotal decimal.Decimal // Quantity * UnitCost
}
