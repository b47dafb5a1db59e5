package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVoucherRequest body para POST /api/vouchers.
type CreateVoucherRequest struct {
	Type      string          `json:"type"` // receipt, payment
	PartyName string          `json:"party_name"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"` // cash, transfer, check
	Date      *time.Time      `json:"date,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// VoucherResponse representación HTTP de un comprobante.
type VoucherResponse struct {
	ID        string          `json:"id"`
	VoucherNo string          `json:"voucher_no"`
	Type      string          `json:"type"`
	PartyName string          `json:"party_name"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedBy string          `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// VoucherListResponse listado paginado de comprobantes.
type VoucherListResponse struct {
	Items []VoucherResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
