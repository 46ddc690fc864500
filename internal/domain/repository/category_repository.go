package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	List(ctx context.Context, f CategoryFilter) ([]*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByNameAndType(ctx context.Context, name, categoryType string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, parentID string) (int, error)
}
