package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// StoreUseCase casos de uso de almacenes y sus racks.
type StoreUseCase struct {
	storeRepo repository.StoreRepository
	rackRepo  repository.RackRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository, rackRepo repository.RackRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo, rackRepo: rackRepo}
}

// ListStores lista los almacenes.
func (uc *StoreUseCase) ListStores(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

// CreateStore crea un almacén.
func (uc *StoreUseCase) CreateStore(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	code, err := requiredText("code", in.Code)
	if err != nil {
		return nil, err
	}
	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Store{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Address:   in.Address,
		Status:    statusOrActive(in.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStoreResponse(s), nil
}

// ListRacks devuelve racks paginados con su almacén.
func (uc *StoreUseCase) ListRacks(ctx context.Context, f repository.RackFilter, page dto.PageRequest) (*dto.RackListResponse, error) {
	page.DefaultPage()
	f.Page = repository.Page{Limit: page.Limit, Offset: page.Offset()}

	list, err := uc.rackRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.rackRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RackResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRackResponse(r))
	}
	return &dto.RackListResponse{Racks: out, Pagination: dto.NewPagination(page, total)}, nil
}

// GetRack obtiene un rack.
func (uc *StoreUseCase) GetRack(ctx context.Context, id string) (*dto.RackResponse, error) {
	r, err := uc.getRack(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toRackResponse(r)
	return &out, nil
}

// CreateRack crea un rack en un almacén existente. El número de rack es único dentro del almacén.
func (uc *StoreUseCase) CreateRack(ctx context.Context, in dto.CreateRackRequest) (*dto.RackResponse, error) {
	store, err := uc.storeRepo.GetByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NotFound("Store not found")
	}
	number, err := requiredText("rackNumber", in.RackNumber)
	if err != nil {
		return nil, err
	}
	existing, err := uc.rackRepo.GetByStoreAndNumber(ctx, store.ID, number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("Rack number already exists in this store")
	}
	now := time.Now()
	r := &entity.Rack{
		ID:          uuid.New().String(),
		RackNumber:  number,
		StoreID:     store.ID,
		Description: in.Description,
		Status:      statusOrActive(in.Status),
		Store:       store,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.rackRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	out := toRackResponse(r)
	return &out, nil
}

// UpdateRack actualiza número, descripción o estado de un rack.
func (uc *StoreUseCase) UpdateRack(ctx context.Context, id string, in dto.UpdateRackRequest) (*dto.RackResponse, error) {
	r, err := uc.getRack(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.RackNumber != nil {
		number, err := requiredText("rackNumber", *in.RackNumber)
		if err != nil {
			return nil, err
		}
		if number != r.RackNumber {
			existing, err := uc.rackRepo.GetByStoreAndNumber(ctx, r.StoreID, number)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != r.ID {
				return nil, domain.Duplicate("Rack number already exists in this store")
			}
		}
		r.RackNumber = number
	}
	setString(&r.Description, in.Description)
	setString(&r.Status, in.Status)
	r.UpdatedAt = time.Now()
	if err := uc.rackRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	out := toRackResponse(r)
	return &out, nil
}

// DeleteRack elimina un rack.
func (uc *StoreUseCase) DeleteRack(ctx context.Context, id string) error {
	if _, err := uc.getRack(ctx, id); err != nil {
		return err
	}
	return uc.rackRepo.Delete(ctx, id)
}

func (uc *StoreUseCase) getRack(ctx context.Context, id string) (*entity.Rack, error) {
	r, err := uc.rackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("Rack not found")
	}
	return r, nil
}
