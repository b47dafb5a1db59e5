package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comprobante.
const (
	VoucherTypeReceipt = "receipt" // recibo de caja (ingreso)
	VoucherTypePayment = "payment" // comprobante de egreso
)

// Métodos de pago aceptados en comprobantes.
const (
	VoucherMethodCash     = "cash"
	VoucherMethodTransfer = "transfer"
	VoucherMethodCheck    = "check"
)

// Voucher comprobante de ingreso o egreso de caja.
// VoucherNo es secuencial por empresa y tipo: RV-0001 / PV-0001.
type Voucher struct {
	ID        string
	CompanyID string
	VoucherNo string
	Type      string // receipt, payment
	PartyName string // de quién se recibe / a quién se paga
	Amount    decimal.Decimal
	Method    string // cash, transfer, check
	Date      time.Time
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
