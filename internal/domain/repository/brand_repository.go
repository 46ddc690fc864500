package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	List(ctx context.Context, f BrandFilter) ([]*entity.Brand, error)
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
	Create(ctx context.Context, brand *entity.Brand) error
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id string) error
}
