package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

var _ repository.VoucherRepository = (*VoucherRepo)(nil)

// VoucherRepo implementación sobre PostgreSQL (usable con pool o tx).
type VoucherRepo struct {
	q Querier
}

// NewVoucherRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVoucherRepository(q Querier) *VoucherRepo {
	return &VoucherRepo{q: q}
}

const voucherColumns = "id, company_id, voucher_no, type, party_name, amount, method, date, notes, created_by, created_at"

// Create persiste un comprobante.
func (r *VoucherRepo) Create(voucher *entity.Voucher) error {
	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		voucher.ID, voucher.CompanyID, voucher.VoucherNo, voucher.Type,
		voucher.PartyName, voucher.Amount, voucher.Method, voucher.Date,
		voucher.Notes, nullable(voucher.CreatedBy), voucher.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de comprobante duplicado: %w", err)
		}
		return fmt.Errorf("create voucher: %w", err)
	}
	return nil
}

// GetByID obtiene un comprobante por ID. Devuelve nil, nil si no existe.
func (r *VoucherRepo) GetByID(id string) (*entity.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1`
	var v entity.Voucher
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.CompanyID, &v.VoucherNo, &v.Type, &v.PartyName,
		&v.Amount, &v.Method, &v.Date, &v.Notes, &createdBy, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher: %w", err)
	}
	if createdBy != nil {
		v.CreatedBy = *createdBy
	}
	return &v, nil
}

// ListByCompany lista comprobantes con filtros, más reciente primero.
func (r *VoucherRepo) ListByCompany(companyID string, filter repository.VoucherFilter, limit, offset int) ([]*entity.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Voucher
	for rows.Next() {
		var v entity.Voucher
		var createdBy *string
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.VoucherNo, &v.Type, &v.PartyName,
			&v.Amount, &v.Method, &v.Date, &v.Notes, &createdBy, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		if createdBy != nil {
			v.CreatedBy = *createdBy
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete elimina un comprobante.
func (r *VoucherRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vouchers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete voucher: %w", err)
	}
	return nil
}

// CountByCompanyAndType alimenta la numeración secuencial RV-/PV-.
func (r *VoucherRepo) CountByCompanyAndType(companyID, voucherType string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM vouchers WHERE company_id = $1 AND type = $2`,
		companyID, voucherType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count vouchers: %w", err)
	}
	return count, nil
}
