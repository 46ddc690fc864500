package repository

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// KitRepository define el puerto de persistencia para Kit. Create guarda cabecera e ítems juntos.
type KitRepository interface {
	List(ctx context.Context, f KitFilter) ([]*entity.Kit, error)
	Count(ctx context.Context, f KitFilter) (int, error)
	GetByID(ctx context.Context, id string) (*entity.Kit, error)
	GetByBadgeNo(ctx context.Context, badgeNo string) (*entity.Kit, error)
	Create(ctx context.Context, kit *entity.Kit) error
	Delete(ctx context.Context, id string) error
	CountItemsByPart(ctx context.Context, partID string) (int, error)
}
