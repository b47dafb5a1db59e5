package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse agregados del tablero de inventario.
type DashboardResponse struct {
	ActiveParts    int64           `json:"active_parts"`
	StockUnits     int64           `json:"stock_units"`
	StockValue     decimal.Decimal `json:"stock_value"`
	MovementsToday int64           `json:"movements_today"`
	InUnitsToday   int64           `json:"in_units_today"`
	OutUnitsToday  int64           `json:"out_units_today"`
	LowStockParts  int64           `json:"low_stock_parts"`
}

// StockMovementReportRowDTO renglón del informe periódico de movimientos.
type StockMovementReportRowDTO struct {
	PartID         string `json:"part_id"`
	PartNo         string `json:"part_no"`
	Description    string `json:"description"`
	OpeningBalance int64  `json:"opening_balance"`
	PeriodIn       int64  `json:"period_in"`
	PeriodOut      int64  `json:"period_out"`
	ClosingBalance int64  `json:"closing_balance"`
}

// StockMovementReportDTO informe completo del período [From, To].
type StockMovementReportDTO struct {
	From time.Time                   `json:"from"`
	To   time.Time                   `json:"to"`
	Rows []StockMovementReportRowDTO `json:"rows"`
}
