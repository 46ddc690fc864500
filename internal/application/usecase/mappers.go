package usecase

import (
	"strings"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

func toBrandResponse(b *entity.Brand) dto.BrandResponse {
	return dto.BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Type:        c.Type,
		ParentID:    c.ParentID,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toPartResponse(p *entity.Part) dto.PartResponse {
	return dto.PartResponse{
		ID:           p.ID,
		PartNo:       p.PartNo,
		MasterPartNo: p.MasterPartNo,
		Description:  p.Description,
		Brand:        p.Brand,
		MainCategory: p.MainCategory,
		SubCategory:  p.SubCategory,
		Origin:       p.Origin,
		Grade:        p.Grade,
		UOM:          p.UOM,
		Cost:         p.Cost,
		PriceA:       p.PriceA,
		PriceB:       p.PriceB,
		Status:       p.Status,
		Quantity:     p.Quantity,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPartSummary resumen de parte para ítems embebidos; nil si la relación no se cargó.
func ToPartSummary(p *entity.Part) *dto.PartSummary {
	if p == nil {
		return nil
	}
	return &dto.PartSummary{
		ID:          p.ID,
		PartNo:      p.PartNo,
		Description: p.Description,
		Brand:       p.Brand,
	}
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		CompanyName:   s.CompanyName,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		City:          s.City,
		Country:       s.Country,
		ContactPerson: s.ContactPerson,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		Address:   s.Address,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toRackResponse(r *entity.Rack) dto.RackResponse {
	return dto.RackResponse{
		ID:          r.ID,
		RackNumber:  r.RackNumber,
		StoreID:     r.StoreID,
		Description: r.Description,
		Status:      r.Status,
		Store:       toStoreResponse(r.Store),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toKitResponse(k *entity.Kit) dto.KitResponse {
	items := make([]dto.KitItemResponse, 0, len(k.Items))
	for _, it := range k.Items {
		items = append(items, dto.KitItemResponse{
			ID:       it.ID,
			PartID:   it.PartID,
			Quantity: it.Quantity,
			Part:     ToPartSummary(it.Part),
		})
	}
	return dto.KitResponse{
		ID:           k.ID,
		BadgeNo:      k.BadgeNo,
		Name:         k.Name,
		Description:  k.Description,
		SellingPrice: k.SellingPrice,
		TotalCost:    k.TotalCost,
		Status:       k.Status,
		Items:        items,
		CreatedAt:    k.CreatedAt,
		UpdatedAt:    k.UpdatedAt,
	}
}

func statusOrActive(s string) string {
	if s == "" {
		return entity.StatusActive
	}
	return s
}

// requiredText recorta v; si queda vacío el campo se trata como ausente.
func requiredText(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", domain.Invalid("%s is required", field)
	}
	return v, nil
}
