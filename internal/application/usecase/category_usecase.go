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

// CategoryUseCase casos de uso para categorías principales y subcategorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	partRepo repository.PartRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, partRepo repository.PartRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, partRepo: partRepo}
}

// List lista categorías por nombre, opcionalmente filtradas por estado y tipo.
func (uc *CategoryUseCase) List(ctx context.Context, f repository.CategoryFilter) ([]dto.CategoryResponse, error) {
	if f.Type != "" && f.Type != entity.CategoryTypeMain && f.Type != entity.CategoryTypeSub {
		return nil, domain.Invalid("type must be one of: main sub")
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// GetByID obtiene una categoría.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Create crea una categoría. Una subcategoría exige un padre existente de tipo main.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	var parentID *string
	switch in.Type {
	case entity.CategoryTypeMain:
		// las principales no cuelgan de nada
	case entity.CategoryTypeSub:
		if in.ParentID == nil || *in.ParentID == "" {
			return nil, domain.Invalid("parentId is required for sub categories")
		}
		parent, err := uc.repo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.NotFound("Parent category not found")
		}
		if parent.Type != entity.CategoryTypeMain {
			return nil, domain.Invalid("parentId must reference a main category")
		}
		parentID = &parent.ID
	default:
		return nil, domain.Invalid("type must be one of: main sub")
	}

	existing, err := uc.repo.GetByNameAndType(ctx, name, in.Type)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("Category already exists")
	}

	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        in.Type,
		ParentID:    parentID,
		Description: in.Description,
		Status:      statusOrActive(in.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Update actualiza nombre, descripción o estado. El tipo y el padre no cambian.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := requiredText("name", *in.Name)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(name, c.Name) {
			existing, err := uc.repo.GetByNameAndType(ctx, name, c.Type)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != c.ID {
				return nil, domain.Duplicate("Category already exists")
			}
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// Delete elimina la categoría si ninguna parte ni subcategoría la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	parts, err := uc.partRepo.CountByCategory(ctx, c.Name)
	if err != nil {
		return err
	}
	if parts > 0 {
		return &domain.DependencyError{Resource: "category", Dependents: "part(s)", Count: parts}
	}
	children, err := uc.repo.CountChildren(ctx, c.ID)
	if err != nil {
		return err
	}
	if children > 0 {
		return &domain.DependencyError{Resource: "category", Dependents: "sub category(ies)", Count: children}
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CategoryUseCase) get(ctx context.Context, id string) (*entity.Category, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("Category not found")
	}
	return c, nil
}
