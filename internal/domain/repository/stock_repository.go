package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// StockRepository define el puerto para consultar/fijar el stock de una parte.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(ctx context.Context, partID string) (*entity.Stock, error)
	// Set crea la fila si no existe o sobrescribe la cantidad (no incrementa).
	Set(ctx context.Context, partID string, quantity int) error
}
