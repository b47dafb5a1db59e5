package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const orderColumns = "id, company_id, order_no, supplier_id, store_id, status, expected_date, notes, total, created_at, updated_at, created_by"

// Create persiste la orden con sus renglones.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	var expected any
	if !order.ExpectedDate.IsZero() {
		expected = order.ExpectedDate
	}
	_, err := r.q.Exec(ctx, query,
		order.ID, order.CompanyID, order.OrderNo, order.SupplierID, order.StoreID,
		order.Status, expected, order.Notes, order.Total,
		order.CreatedAt, order.UpdatedAt, nullable(order.CreatedBy))
	if err != nil {
		return fmt.Errorf("create purchase order: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// GetByID devuelve la orden con sus renglones cargados. nil, nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	order, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil || order == nil {
		return order, err
	}

	itemsQuery := `
		SELECT id, order_id, part_id, quantity, unit_cost, subtotal
		FROM purchase_order_items WHERE order_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.PartID, &it.Quantity, &it.UnitCost, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		order.Items = append(order.Items, it)
	}
	return order, rows.Err()
}

// ListByCompany lista órdenes sin renglones; status vacío = todas.
func (r *PurchaseOrderRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// Update reemplaza cabecera y renglones (borra e inserta los items).
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	ctx := context.Background()
	query := `
		UPDATE purchase_orders SET store_id = $2, expected_date = $3, notes = $4,
			total = $5, updated_at = $6
		WHERE id = $1`
	var expected any
	if !order.ExpectedDate.IsZero() {
		expected = order.ExpectedDate
	}
	_, err := r.q.Exec(ctx, query,
		order.ID, order.StoreID, expected, order.Notes, order.Total, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// UpdateStatus cambia solo el estado de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string) error {
	query := `UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Delete elimina la orden; los renglones caen por FK ON DELETE CASCADE.
func (r *PurchaseOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

// CountByCompany cuenta órdenes de la empresa (numeración secuencial).
func (r *PurchaseOrderRepo) CountByCompany(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_orders WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count purchase orders: %w", err)
	}
	return count, nil
}

func (r *PurchaseOrderRepo) insertItems(ctx context.Context, orderID string, items []entity.PurchaseOrderItem) error {
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_order_items (id, order_id, part_id, quantity, unit_cost, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, orderID, it.PartID, it.Quantity, it.UnitCost, it.Subtotal)
		if err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var expected *time.Time
	var createdBy *string
	err := row.Scan(&o.ID, &o.CompanyID, &o.OrderNo, &o.SupplierID, &o.StoreID,
		&o.Status, &expected, &o.Notes, &o.Total, &o.CreatedAt, &o.UpdatedAt, &createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if expected != nil {
		o.ExpectedDate = *expected
	}
	if createdBy != nil {
		o.CreatedBy = *createdBy
	}
	return &o, nil
}

func scanOrderRow(rows pgx.Rows) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var expected *time.Time
	var createdBy *string
	if err := rows.Scan(&o.ID, &o.CompanyID, &o.OrderNo, &o.SupplierID, &o.StoreID,
		&o.Status, &expected, &o.Notes, &o.Total, &o.CreatedAt, &o.UpdatedAt, &createdBy); err != nil {
		return nil, fmt.Errorf("scan purchase order: %w", err)
	}
	if expected != nil {
		o.ExpectedDate = *expected
	}
	if createdBy != nil {
		o.CreatedBy = *createdBy
	}
	return &o, nil
}
