package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// PartRepository define el puerto de persistencia para Part.
// List y Count aplican el mismo filtro; Count ignora la paginación.
type PartRepository interface {
	List(ctx context.Context, f PartFilter) ([]*entity.Part, error)
	Count(ctx context.Context, f PartFilter) (int, error)
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	GetByPartNo(ctx context.Context, partNo string) (*entity.Part, error)
	Create(ctx context.Context, part *entity.Part) error
	Update(ctx context.Context, part *entity.Part) error
	Delete(ctx context.Context, id string) error
	CountByBrand(ctx context.Context, brandName string) (int, error)
	CountByCategory(ctx context.Context, categoryName string) (int, error)
}
