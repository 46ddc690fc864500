package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	kitcost "github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/inventory"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// KitTxRunner ejecuta fn dentro de una transacción con un KitRepository ligado a ella.
type KitTxRunner interface {
	RunKit(ctx context.Context, fn func(kits repository.KitRepository) error) error
}

// KitUseCase casos de uso de kits.
type KitUseCase struct {
	repo     repository.KitRepository
	partRepo repository.PartRepository
	tx       KitTxRunner
}

// NewKitUseCase construye el caso de uso.
func NewKitUseCase(repo repository.KitRepository, partRepo repository.PartRepository, tx KitTxRunner) *KitUseCase {
	return &KitUseCase{repo: repo, partRepo: partRepo, tx: tx}
}

// List devuelve kits paginados con ítems y partes.
func (uc *KitUseCase) List(ctx context.Context, f repository.KitFilter, page dto.PageRequest) (*dto.KitListResponse, error) {
	page.DefaultPage()
	f.Page = repository.Page{Limit: page.Limit, Offset: page.Offset()}

	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KitResponse, 0, len(list))
	for _, k := range list {
		out = append(out, toKitResponse(k))
	}
	return &dto.KitListResponse{Kits: out, Pagination: dto.NewPagination(page, total)}, nil
}

// GetByID obtiene un kit con sus ítems.
func (uc *KitUseCase) GetByID(ctx context.Context, id string) (*dto.KitResponse, error) {
	k, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toKitResponse(k)
	return &out, nil
}

// Create crea cabecera e ítems en una sola transacción. TotalCost = Σ costo de la parte × cantidad.
func (uc *KitUseCase) Create(ctx context.Context, in dto.CreateKitRequest) (*dto.KitResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items are required")
	}
	badge, err := requiredText("badgeNo", in.BadgeNo)
	if err != nil {
		return nil, err
	}
	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByBadgeNo(ctx, badge)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("Kit badge number already exists")
	}

	now := time.Now()
	kit := &entity.Kit{
		ID:           uuid.New().String(),
		BadgeNo:      badge,
		Name:         name,
		Description:  in.Description,
		SellingPrice: in.SellingPrice,
		Status:       statusOrActive(in.Status),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	lines := make([]kitcost.CostLine, 0, len(in.Items))
	for i, it := range in.Items {
		part, err := uc.partRepo.GetByID(ctx, it.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.NotFound("Part not found: items[%d].partId", i)
		}
		lines = append(lines, kitcost.CostLine{UnitCost: part.Cost, Quantity: it.Quantity})
		kit.Items = append(kit.Items, entity.KitItem{
			ID:       uuid.New().String(),
			KitID:    kit.ID,
			PartID:   part.ID,
			Quantity: it.Quantity,
			Part:     part,
		})
	}

	kit.TotalCost = kitcost.KitCost(lines)

	if err := uc.tx.RunKit(ctx, func(kits repository.KitRepository) error {
		return kits.Create(ctx, kit)
	}); err != nil {
		return nil, err
	}
	out := toKitResponse(kit)
	return &out, nil
}

// Delete elimina un kit y sus ítems.
func (uc *KitUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *KitUseCase) get(ctx context.Context, id string) (*entity.Kit, error) {
	k, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, domain.NotFound("Kit not found")
	}
	return k, nil
}
