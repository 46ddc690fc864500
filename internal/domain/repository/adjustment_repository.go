package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// AdjustmentRepository define el puerto de persistencia para ajustes de inventario.
type AdjustmentRepository interface {
	// Create inserta la cabecera y todos sus ítems.
	Create(ctx context.Context, adj *entity.InventoryAdjustment) error
	// GetByID devuelve la cabecera con ítems y la parte relacionada de cada ítem.
	GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error)
	List(ctx context.Context, page Page) ([]*entity.InventoryAdjustment, error)
	Count(ctx context.Context) (int, error)
}
