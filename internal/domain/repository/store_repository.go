package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	List(ctx context.Context) ([]*entity.Store, error)
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	Create(ctx context.Context, store *entity.Store) error
}

// RackRepository define el puerto de persistencia para Rack.
type RackRepository interface {
	List(ctx context.Context, f RackFilter) ([]*entity.Rack, error)
	Count(ctx context.Context, f RackFilter) (int, error)
	GetByID(ctx context.Context, id string) (*entity.Rack, error)
	GetByStoreAndNumber(ctx context.Context, storeID, rackNumber string) (*entity.Rack, error)
	Create(ctx context.Context, rack *entity.Rack) error
	Update(ctx context.Context, rack *entity.Rack) error
	Delete(ctx context.Context, id string) error
}
