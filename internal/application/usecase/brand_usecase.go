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

// BrandUseCase casos de uso CRUD para marcas.
type BrandUseCase struct {
	repo     repository.BrandRepository
	partRepo repository.PartRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository, partRepo repository.PartRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo, partRepo: partRepo}
}

// List lista marcas ordenadas por nombre.
func (uc *BrandUseCase) List(ctx context.Context, f repository.BrandFilter) ([]dto.BrandResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBrandResponse(b))
	}
	return out, nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.BrandResponse, error) {
	brand, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toBrandResponse(brand)
	return &out, nil
}

// Create crea una marca. El nombre es único sin distinguir mayúsculas.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("Brand already exists")
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    statusOrActive(in.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	out := toBrandResponse(brand)
	return &out, nil
}

// Update actualiza nombre y/o estado de una marca.
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := requiredText("name", *in.Name)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(name, brand.Name) {
			existing, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != brand.ID {
				return nil, domain.Duplicate("Brand already exists")
			}
		}
		brand.Name = name
	}
	if in.Status != nil {
		brand.Status = *in.Status
	}
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	out := toBrandResponse(brand)
	return &out, nil
}

// Delete elimina una marca si ninguna parte la referencia por nombre.
func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	brand, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	n, err := uc.partRepo.CountByBrand(ctx, brand.Name)
	if err != nil {
		return err
	}
	if n > 0 {
		return &domain.DependencyError{Resource: "brand", Dependents: "part(s)", Count: n}
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *BrandUseCase) get(ctx context.Context, id string) (*entity.Brand, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.NotFound("Brand not found")
	}
	return brand, nil
}
