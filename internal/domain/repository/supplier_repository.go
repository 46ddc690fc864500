package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	List(ctx context.Context, f SupplierFilter) ([]*entity.Supplier, error)
	Count(ctx context.Context, f SupplierFilter) (int, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByCode(ctx context.Context, code string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}
