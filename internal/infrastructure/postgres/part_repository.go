package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

const partColumns = "id, company_id, part_no, description, category_id, brand_id, unit_measure, origin, cost, price, reorder_point, status, created_at, updated_at"

// Create persiste un repuesto.
func (r *PartRepo) Create(part *entity.Part) error {
	if part.ID == "" {
		part.ID = uuid.New().String()
	}
	query := `
		INSERT INTO parts (` + partColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.CompanyID, part.PartNo, part.Description,
		nullable(part.CategoryID), nullable(part.BrandID), part.UnitMeasure, part.Origin,
		part.Cost, part.Price, part.ReorderPoint, part.Status,
		part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID. Devuelve nil, nil si no existe.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get part")
}

// GetByCompanyAndPartNo busca por número de parte dentro de la empresa.
func (r *PartRepo) GetByCompanyAndPartNo(companyID, partNo string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE company_id = $1 AND part_no = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, partNo), "get part by part_no")
}

// Update persiste los cambios de un repuesto.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET description = $2, category_id = $3, brand_id = $4,
			unit_measure = $5, origin = $6, cost = $7, price = $8,
			reorder_point = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Description, nullable(part.CategoryID), nullable(part.BrandID),
		part.UnitMeasure, part.Origin, part.Cost, part.Price,
		part.ReorderPoint, part.Status, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// Delete elimina un repuesto.
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

// List lista el catálogo con filtros y paginación.
func (r *PartRepo) List(companyID string, filter repository.PartFilter, limit, offset int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (part_no ILIKE $%d OR description ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if filter.BrandID != "" {
		query += fmt.Sprintf(" AND brand_id = $%d", pos)
		args = append(args, filter.BrandID)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY part_no LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListActiveByCompany catálogo activo completo (análisis de rotación).
func (r *PartRepo) ListActiveByCompany(ctx context.Context, companyID string) ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + ` FROM parts
		WHERE company_id = $1 AND status = 'active'
		ORDER BY part_no`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list active parts: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *PartRepo) scanOne(row pgx.Row, op string) (*entity.Part, error) {
	var p entity.Part
	var categoryID, brandID *string
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.PartNo, &p.Description, &categoryID, &brandID,
		&p.UnitMeasure, &p.Origin, &p.Cost, &p.Price, &p.ReorderPoint, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if brandID != nil {
		p.BrandID = *brandID
	}
	return &p, nil
}

func (r *PartRepo) scanAll(rows pgx.Rows) ([]*entity.Part, error) {
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		var categoryID, brandID *string
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.PartNo, &p.Description, &categoryID, &brandID,
			&p.UnitMeasure, &p.Origin, &p.Cost, &p.Price, &p.ReorderPoint, &p.Status,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		if categoryID != nil {
			p.CategoryID = *categoryID
		}
		if brandID != nil {
			p.BrandID = *brandID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// nullable convierte "" en NULL para columnas con FK opcional.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
