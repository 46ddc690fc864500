package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// PartUseCase casos de uso del catálogo de partes.
type PartUseCase struct {
	repo    repository.PartRepository
	kitRepo repository.KitRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository, kitRepo repository.KitRepository) *PartUseCase {
	return &PartUseCase{repo: repo, kitRepo: kitRepo}
}

// List devuelve una página de partes (más recientes primero) con el total filtrado.
func (uc *PartUseCase) List(ctx context.Context, f repository.PartFilter, page dto.PageRequest) (*dto.PartListResponse, error) {
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
	parts := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		parts = append(parts, toPartResponse(p))
	}
	return &dto.PartListResponse{Parts: parts, Pagination: dto.NewPagination(page, total)}, nil
}

// GetByID obtiene una parte con su stock.
func (uc *PartUseCase) GetByID(ctx context.Context, id string) (*dto.PartResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toPartResponse(p)
	return &out, nil
}

// Create da de alta una parte; partNo es único.
func (uc *PartUseCase) Create(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	partNo := strings.TrimSpace(in.PartNo)
	if partNo == "" {
		return nil, domain.Invalid("partNo is required")
	}
	existing, err := uc.repo.GetByPartNo(ctx, partNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("Part number already exists")
	}
	now := time.Now()
	p := &entity.Part{
		ID:           uuid.New().String(),
		PartNo:       partNo,
		MasterPartNo: in.MasterPartNo,
		Description:  in.Description,
		Brand:        in.Brand,
		MainCategory: in.MainCategory,
		SubCategory:  in.SubCategory,
		Origin:       in.Origin,
		Grade:        in.Grade,
		UOM:          in.UOM,
		Cost:         in.Cost,
		PriceA:       in.PriceA,
		PriceB:       in.PriceB,
		Status:       statusOrActive(in.Status),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toPartResponse(p)
	return &out, nil
}

// Update aplica los campos presentes. El stock no se toca aquí.
func (uc *PartUseCase) Update(ctx context.Context, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.PartNo != nil {
		partNo, err := requiredText("partNo", *in.PartNo)
		if err != nil {
			return nil, err
		}
		if partNo != p.PartNo {
			existing, err := uc.repo.GetByPartNo(ctx, partNo)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != p.ID {
				return nil, domain.Duplicate("Part number already exists")
			}
		}
		p.PartNo = partNo
	}
	setString(&p.MasterPartNo, in.MasterPartNo)
	setString(&p.Description, in.Description)
	setString(&p.Brand, in.Brand)
	setString(&p.MainCategory, in.MainCategory)
	setString(&p.SubCategory, in.SubCategory)
	setString(&p.Origin, in.Origin)
	setString(&p.Grade, in.Grade)
	setString(&p.UOM, in.UOM)
	setString(&p.Status, in.Status)
	if in.Cost != nil {
		p.Cost = *in.Cost
	}
	if in.PriceA != nil {
		p.PriceA = *in.PriceA
	}
	if in.PriceB != nil {
		p.PriceB = *in.PriceB
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toPartResponse(p)
	return &out, nil
}

// Delete elimina la parte si ningún kit la incluye.
func (uc *PartUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	n, err := uc.kitRepo.CountItemsByPart(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &domain.DependencyError{Resource: "part", Dependents: "kit item(s)", Count: n}
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PartUseCase) get(ctx context.Context, id string) (*entity.Part, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("Part not found")
	}
	return p, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
