package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/repuestos-erp/internal/application/inventory"
	"github.com/tu-usuario/repuestos-erp/internal/application/purchasing"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and purchasing.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ purchasing.TxRunner = (*PurchasingTxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el repo de movimientos atado a la
// tx y hace Commit o Rollback. Lo usan los traslados entre bodegas.
func (r *TxRunner) Run(ctx context.Context, fn func(movRepo repository.StockMovementRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PurchasingTxRunner transacciones de la recepción de órdenes de compra:
// asientos IN + cambio de estado, todo o nada.
type PurchasingTxRunner struct {
	pool *pgxpool.Pool
}

// NewPurchasingTxRunner construye el runner con el pool.
func NewPurchasingTxRunner(pool *pgxpool.Pool) *PurchasingTxRunner {
	return &PurchasingTxRunner{pool: pool}
}

// Run inicia una transacción con repos de movimientos y órdenes atados a ella.
func (r *PurchasingTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	poRepo repository.PurchaseOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockMovementRepository(tx), NewPurchaseOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
