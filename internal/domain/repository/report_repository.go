package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardTotals agregados del tablero de inventario.
// StockValue valoriza con GREATEST(balance, 0): los balances negativos del
// libro no restan valor (asimetría intencional con el stock del clasificador).
type DashboardTotals struct {
	ActiveParts    int64
	StockUnits     int64
	StockValue     decimal.Decimal
	MovementsToday int64
	InUnitsToday   int64
	OutUnitsToday  int64
	LowStockParts  int64
}

// StockMovementReportRow renglón del informe periódico de movimientos:
// balance de apertura, entradas y salidas del período y balance de cierre.
type StockMovementReportRow struct {
	PartID         string
	PartNo         string
	Description    string
	OpeningBalance int64
	PeriodIn       int64
	PeriodOut      int64
	ClosingBalance int64
}

// ReportRepository consultas de solo lectura para tableros e informes.
type ReportRepository interface {
	DashboardTotals(ctx context.Context, companyID string, now time.Time) (*DashboardTotals, error)
	StockMovementReport(ctx context.Context, companyID string, from, to time.Time) ([]StockMovementReportRow, error)
}
