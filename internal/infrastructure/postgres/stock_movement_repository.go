package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = "id, company_id, part_id, store_id, type, quantity, reference, notes, occurred_at, created_at, created_by"

// Create persiste un asiento del libro de movimientos.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.PartID, movement.StoreID,
		movement.Type, movement.Quantity, movement.Reference, movement.Notes,
		movement.OccurredAt, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// List lista asientos de la empresa con filtros, más reciente primero.
func (r *StockMovementRepo) List(ctx context.Context, companyID string, filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.PartID != "" {
		query += fmt.Sprintf(" AND part_id = $%d", pos)
		args = append(args, filter.PartID)
		pos++
	}
	if filter.StoreID != "" {
		query += fmt.Sprintf(" AND store_id = $%d", pos)
		args = append(args, filter.StoreID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND occurred_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByPartIDs trae el libro completo de los repuestos indicados.
func (r *StockMovementRepo) ListByPartIDs(ctx context.Context, partIDs []string) ([]*entity.StockMovement, error) {
	if len(partIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE part_id = ANY($1)
		ORDER BY occurred_at`
	rows, err := r.q.Query(ctx, query, partIDs)
	if err != nil {
		return nil, fmt.Errorf("list movements by parts: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// SumsByPart suma entradas y salidas de un repuesto en todas las bodegas.
func (r *StockMovementRepo) SumsByPart(ctx context.Context, partID string) (repository.StockSums, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)
		FROM stock_movements WHERE part_id = $1`
	sums := repository.StockSums{PartID: partID}
	if err := r.q.QueryRow(ctx, query, partID).Scan(&sums.In, &sums.Out); err != nil {
		return sums, fmt.Errorf("sums by part: %w", err)
	}
	return sums, nil
}

// SumsByPartAndStore limita las sumas a una bodega (validación de traslados).
func (r *StockMovementRepo) SumsByPartAndStore(ctx context.Context, partID, storeID string) (repository.StockSums, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)
		FROM stock_movements WHERE part_id = $1 AND store_id = $2`
	sums := repository.StockSums{PartID: partID}
	if err := r.q.QueryRow(ctx, query, partID, storeID).Scan(&sums.In, &sums.Out); err != nil {
		return sums, fmt.Errorf("sums by part and store: %w", err)
	}
	return sums, nil
}

// SumsByCompany sumas por repuesto de toda la empresa (listado de balances).
func (r *StockMovementRepo) SumsByCompany(ctx context.Context, companyID string) ([]repository.StockSums, error) {
	query := `
		SELECT part_id,
			COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)
		FROM stock_movements WHERE company_id = $1
		GROUP BY part_id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("sums by company: %w", err)
	}
	defer rows.Close()
	var list []repository.StockSums
	for rows.Next() {
		var s repository.StockSums
		if err := rows.Scan(&s.PartID, &s.In, &s.Out); err != nil {
			return nil, fmt.Errorf("scan sums: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.PartID, &m.StoreID, &m.Type,
			&m.Quantity, &m.Reference, &m.Notes, &m.OccurredAt, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
