package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// OccurredAt opcional: vacío = ahora.
type RegisterMovementRequest struct {
	PartID     string     `json:"part_id"`
	StoreID    string     `json:"store_id"`
	Type       string     `json:"type"` // in, out
	Quantity   int64      `json:"quantity"`
	Reference  string     `json:"reference,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	PartID      string `json:"part_id"`
	FromStoreID string `json:"from_store_id"`
	ToStoreID   string `json:"to_store_id"`
	Quantity    int64  `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
}

// MovementResponse un asiento del libro de movimientos.
type MovementResponse struct {
	ID         string    `json:"id"`
	PartID     string    `json:"part_id"`
	StoreID    string    `json:"store_id"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"`
	Reference  string    `json:"reference,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by,omitempty"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// BalanceResponse balance de un repuesto: sum(in), sum(out) y el neto.
type BalanceResponse struct {
	PartID  string `json:"part_id"`
	In      int64  `json:"in"`
	Out     int64  `json:"out"`
	Balance int64  `json:"balance"`
}

// StockBalanceItemDTO balance por repuesto con banderas de alerta.
type StockBalanceItemDTO struct {
	PartID       string          `json:"part_id"`
	PartNo       string          `json:"part_no"`
	Description  string          `json:"description"`
	Balance      int64           `json:"balance"`
	ReorderPoint int64           `json:"reorder_point"`
	Value        decimal.Decimal `json:"value"` // cost * max(0, balance)
	IsLowStock   bool            `json:"is_low_stock"`
	IsOutOfStock bool            `json:"is_out_of_stock"`
}

// StockBalancesResponse listado de balances con paginación.
type StockBalancesResponse struct {
	Items []StockBalanceItemDTO `json:"items"`
	Page  PageResponse          `json:"page"`
}

// StockAnalysisQuery parámetros del análisis de rotación, ya con defaults
// aplicados por el handler (30/90/180 días, 6 meses).
type StockAnalysisQuery struct {
	FastMovingDays       int
	SlowMovingDays       int
	DeadStockDays        int
	AnalysisPeriodMonths int
	Search               string
	Category             string // nombre de categoría; "all"/"All" = sin filtro
	Classification       string // Fast|Normal|Slow|Dead; "all"/"All" = sin filtro
}

// StockAnalysisItemDTO renglón del análisis de rotación. Las claves JSON son
// camelCase por compatibilidad con el consumidor del endpoint.
type StockAnalysisItemDTO struct {
	ID             string          `json:"id"`
	PartNo         string          `json:"partNo"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Quantity       int64           `json:"quantity"`
	Value          decimal.Decimal `json:"value"`    // cost * max(0, quantity)
	DaysIdle       int             `json:"daysIdle"`
	Turnover       float64         `json:"turnover"` // redondeado a 1 decimal
	Classification string          `json:"classification"`
}

// StockAnalysisResponse respuesta completa del análisis (sin paginar).
type StockAnalysisResponse struct {
	Data []StockAnalysisItemDTO `json:"data"`
}

// MovementRecordedEvent evento publicado al broker al registrar un movimiento.
type MovementRecordedEvent struct {
	EventID    string    `json:"event_id"`
	CompanyID  string    `json:"company_id"`
	MovementID string    `json:"movement_id"`
	PartID     string    `json:"part_id"`
	StoreID    string    `json:"store_id"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"`
	Reference  string    `json:"reference,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Timestamp  time.Time `json:"timestamp"`
}
