package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest body para POST /api/purchasing/suppliers.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/purchasing/suppliers/:id.
type UpdateSupplierRequest struct {
	Name        *string `json:"name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PurchaseOrderItemRequest renglón de una orden de compra.
type PurchaseOrderItemRequest struct {
	PartID   string          `json:"part_id"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest body para POST /api/purchasing/orders.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                     `json:"supplier_id"`
	StoreID      string                     `json:"store_id"`
	ExpectedDate *time.Time                 `json:"expected_date,omitempty"`
	Notes        string                     `json:"notes,omitempty"`
	Items        []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrderRequest body para PUT /api/purchasing/orders/:id
// (solo órdenes en draft; reemplaza los renglones).
type UpdatePurchaseOrderRequest struct {
	StoreID      *string                    `json:"store_id,omitempty"`
	ExpectedDate *time.Time                 `json:"expected_date,omitempty"`
	Notes        *string                    `json:"notes,omitempty"`
	Items        []PurchaseOrderItemRequest `json:"items,omitempty"`
}

// PurchaseOrderItemResponse renglón en respuestas.
type PurchaseOrderItemResponse struct {
	ID       string          `json:"id"`
	PartID   string          `json:"part_id"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PurchaseOrderResponse representación HTTP de una orden de compra.
type PurchaseOrderResponse struct {
	ID           string                      `json:"id"`
	OrderNo      string                      `json:"order_no"`
	SupplierID   string                      `json:"supplier_id"`
	StoreID      string                      `json:"store_id"`
	Status       string                      `json:"status"`
	ExpectedDate *time.Time                  `json:"expected_date,omitempty"`
	Notes        string                      `json:"notes,omitempty"`
	Total        decimal.Decimal             `json:"total"`
	Items        []PurchaseOrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// PurchaseOrderListResponse listado paginado de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
