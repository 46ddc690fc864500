package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/inventory"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and usecase.KitTxRunner.
var (
	_ inventory.TxRunner  = (*TxRunner)(nil)
	_ usecase.KitTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de ajustes y stock atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	adjRepo repository.AdjustmentRepository,
	stockRepo repository.StockRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewAdjustmentRepository(tx), NewStockRepository(tx))
	})
}

// RunKit inicia una transacción para crear un kit con sus ítems.
func (r *TxRunner) RunKit(ctx context.Context, fn func(kits repository.KitRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewKitRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
