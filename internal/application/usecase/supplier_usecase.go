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

// SupplierSearchFields columnas a las que puede restringirse la búsqueda.
var SupplierSearchFields = []string{"name", "code", "email", "phone", "companyName"}

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List devuelve proveedores por nombre con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, f repository.SupplierFilter, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	if f.SearchField != "" && !validSearchField(f.SearchField) {
		return nil, domain.Invalid("searchField must be one of: %s", strings.Join(SupplierSearchFields, " "))
	}
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
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Suppliers: out, Pagination: dto.NewPagination(page, total)}, nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// Create crea un proveedor con código único.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	code, err := requiredText("code", in.Code)
	if err != nil {
		return nil, err
	}
	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("Supplier code already exists")
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.New().String(),
		Code:          code,
		Name:          name,
		CompanyName:   in.CompanyName,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		Country:       in.Country,
		ContactPerson: in.ContactPerson,
		Status:        statusOrActive(in.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// Update actualiza los datos de contacto; el código no cambia.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := requiredText("name", *in.Name)
		if err != nil {
			return nil, err
		}
		s.Name = name
	}
	setString(&s.CompanyName, in.CompanyName)
	setString(&s.Email, in.Email)
	setString(&s.Phone, in.Phone)
	setString(&s.Address, in.Address)
	setString(&s.City, in.City)
	setString(&s.Country, in.Country)
	setString(&s.ContactPerson, in.ContactPerson)
	setString(&s.Status, in.Status)
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	out := toSupplierResponse(s)
	return &out, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *SupplierUseCase) get(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("Supplier not found")
	}
	return s, nil
}

func validSearchField(field string) bool {
	for _, f := range SupplierSearchFields {
		if f == field {
			return true
		}
	}
	return false
}
