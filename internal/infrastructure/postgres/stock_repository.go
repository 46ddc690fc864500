package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de una parte; nil si nunca se ajustó.
func (r *StockRepo) Get(ctx context.Context, partID string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(ctx,
		`SELECT part_id, quantity, updated_at FROM stock WHERE part_id = $1`, partID,
	).Scan(&s.PartID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Set crea la fila o sobrescribe la cantidad. Sin guarda de negativos.
func (r *StockRepo) Set(ctx context.Context, partID string, quantity int) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (part_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (part_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
		partID, quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", mapWriteError(err, "", "stock"))
	}
	return nil
}
