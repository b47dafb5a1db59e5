package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura (tablero e informes).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DashboardTotals agregados del tablero. El valor de stock usa
// GREATEST(balance, 0): los balances negativos del libro no restan valor.
func (r *ReportRepo) DashboardTotals(ctx context.Context, companyID string, now time.Time) (*repository.DashboardTotals, error) {
	totals := &repository.DashboardTotals{}

	balancesQuery := `
		WITH balances AS (
			SELECT p.id, p.cost, p.reorder_point,
				COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'in'), 0)
				- COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'out'), 0) AS balance
			FROM parts p
			LEFT JOIN stock_movements m ON m.part_id = p.id
			WHERE p.company_id = $1 AND p.status = 'active'
			GROUP BY p.id, p.cost, p.reorder_point
		)
		SELECT COUNT(*),
			COALESCE(SUM(GREATEST(balance, 0)), 0),
			COALESCE(SUM(cost * GREATEST(balance, 0)), 0),
			COUNT(*) FILTER (WHERE balance <= reorder_point)
		FROM balances`
	err := r.q.QueryRow(ctx, balancesQuery, companyID).Scan(
		&totals.ActiveParts, &totals.StockUnits, &totals.StockValue, &totals.LowStockParts)
	if err != nil {
		return nil, fmt.Errorf("dashboard balances: %w", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayQuery := `
		SELECT COUNT(*),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)
		FROM stock_movements
		WHERE company_id = $1 AND occurred_at >= $2 AND occurred_at < $3`
	err = r.q.QueryRow(ctx, todayQuery, companyID, dayStart, dayStart.AddDate(0, 0, 1)).Scan(
		&totals.MovementsToday, &totals.InUnitsToday, &totals.OutUnitsToday)
	if err != nil {
		return nil, fmt.Errorf("dashboard today: %w", err)
	}
	return totals, nil
}

// StockMovementReport apertura, entradas, salidas y cierre por repuesto en el
// período [from, to]. Incluye solo repuestos con algún movimiento registrado.
func (r *ReportRepo) StockMovementReport(ctx context.Context, companyID string, from, to time.Time) ([]repository.StockMovementReportRow, error) {
	query := `
		SELECT p.id, p.part_no, p.description,
			COALESCE(SUM(CASE WHEN m.occurred_at < $2 AND m.type = 'in' THEN m.quantity
				WHEN m.occurred_at < $2 AND m.type = 'out' THEN -m.quantity ELSE 0 END), 0) AS opening,
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'in' AND m.occurred_at >= $2 AND m.occurred_at <= $3), 0) AS period_in,
			COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'out' AND m.occurred_at >= $2 AND m.occurred_at <= $3), 0) AS period_out
		FROM parts p
		JOIN stock_movements m ON m.part_id = p.id
		WHERE p.company_id = $1 AND m.occurred_at <= $3
		GROUP BY p.id, p.part_no, p.description
		ORDER BY p.part_no`
	rows, err := r.q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("stock movement report: %w", err)
	}
	defer rows.Close()

	var list []repository.StockMovementReportRow
	for rows.Next() {
		var row repository.StockMovementReportRow
		if err := rows.Scan(&row.PartID, &row.PartNo, &row.Description,
			&row.OpeningBalance, &row.PeriodIn, &row.PeriodOut); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		row.ClosingBalance = row.OpeningBalance + row.PeriodIn - row.PeriodOut
		list = append(list, row)
	}
	return list, rows.Err()
}
