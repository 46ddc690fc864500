package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Brands ────────────────────────────────────────────────────────────────────

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateBrandRequest entrada para actualizar una marca.
type UpdateBrandRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ── Categories ────────────────────────────────────────────────────────────────

// CreateCategoryRequest entrada para crear una categoría. ParentID es obligatorio para type=sub.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Type        string  `json:"type" validate:"required,oneof=main sub"`
	ParentID    *string `json:"parentId"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	ParentID    *string   `json:"parentId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ── Parts ─────────────────────────────────────────────────────────────────────

// CreatePartRequest entrada para crear una parte.
type CreatePartRequest struct {
	PartNo       string          `json:"partNo" validate:"required,max=100"`
	MasterPartNo string          `json:"masterPartNo"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	MainCategory string          `json:"mainCategory"`
	SubCategory  string          `json:"subCategory"`
	Origin       string          `json:"origin"`
	Grade        string          `json:"grade"`
	UOM          string          `json:"uom"`
	Cost         decimal.Decimal `json:"cost"`
	PriceA       decimal.Decimal `json:"priceA"`
	PriceB       decimal.Decimal `json:"priceB"`
	Status       string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdatePartRequest entrada para actualizar una parte (el stock se maneja vía ajustes).
type UpdatePartRequest struct {
	PartNo       *string          `json:"partNo" validate:"omitempty,min=1,max=100"`
	MasterPartNo *string          `json:"masterPartNo"`
	Description  *string          `json:"description"`
	Brand        *string          `json:"brand"`
	MainCategory *string          `json:"mainCategory"`
	SubCategory  *string          `json:"subCategory"`
	Origin       *string          `json:"origin"`
	Grade        *string          `json:"grade"`
	UOM          *string          `json:"uom"`
	Cost         *decimal.Decimal `json:"cost"`
	PriceA       *decimal.Decimal `json:"priceA"`
	PriceB       *decimal.Decimal `json:"priceB"`
	Status       *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// PartResponse salida de una parte, con su stock actual.
type PartResponse struct {
	ID           string          `json:"id"`
	PartNo       string          `json:"partNo"`
	MasterPartNo string          `json:"masterPartNo"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	MainCategory string          `json:"mainCategory"`
	SubCategory  string          `json:"subCategory"`
	Origin       string          `json:"origin"`
	Grade        string          `json:"grade"`
	UOM          string          `json:"uom"`
	Cost         decimal.Decimal `json:"cost"`
	PriceA       decimal.Decimal `json:"priceA"`
	PriceB       decimal.Decimal `json:"priceB"`
	Status       string          `json:"status"`
	Quantity     int             `json:"quantity"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PartSummary datos de la parte embebidos en ítems de kits y ajustes.
type PartSummary struct {
	ID          string `json:"id"`
	PartNo      string `json:"partNo"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
}

// PartListResponse lista paginada de partes.
type PartListResponse struct {
	Parts      []PartResponse `json:"parts"`
	Pagination Pagination     `json:"pagination"`
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Code          string `json:"code" validate:"required,max=50"`
	Name          string `json:"name" validate:"required,max=200"`
	CompanyName   string `json:"companyName"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	ContactPerson string `json:"contactPerson"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	CompanyName   *string `json:"companyName"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
	ContactPerson *string `json:"contactPerson"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"companyName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	ContactPerson string    `json:"contactPerson"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Suppliers  []SupplierResponse `json:"suppliers"`
	Pagination Pagination         `json:"pagination"`
}

// ── Stores & racks ────────────────────────────────────────────────────────────

// CreateStoreRequest entrada para crear un almacén.
type CreateStoreRequest struct {
	Code    string `json:"code" validate:"required,max=50"`
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// StoreResponse salida de un almacén.
type StoreResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateRackRequest entrada para crear un rack.
type CreateRackRequest struct {
	RackNumber  string `json:"rackNumber" validate:"required,max=50"`
	StoreID     string `json:"storeId" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateRackRequest entrada para actualizar un rack (no cambia de almacén).
type UpdateRackRequest struct {
	RackNumber  *string `json:"rackNumber" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// RackResponse salida de un rack con su almacén.
type RackResponse struct {
	ID          string         `json:"id"`
	RackNumber  string         `json:"rackNumber"`
	StoreID     string         `json:"storeId"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Store       *StoreResponse `json:"store,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// RackListResponse lista paginada de racks.
type RackListResponse struct {
	Racks      []RackResponse `json:"racks"`
	Pagination Pagination     `json:"pagination"`
}

// ── Kits ──────────────────────────────────────────────────────────────────────

// KitItemRequest parte y cantidad dentro de un kit.
type KitItemRequest struct {
	PartID   string `json:"partId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// CreateKitRequest entrada para crear un kit con sus ítems.
type CreateKitRequest struct {
	BadgeNo      string           `json:"badgeNo" validate:"required,max=50"`
	Name         string           `json:"name" validate:"required,max=200"`
	Description  string           `json:"description"`
	SellingPrice decimal.Decimal  `json:"sellingPrice"`
	Status       string           `json:"status" validate:"omitempty,oneof=active inactive"`
	Items        []KitItemRequest `json:"items" validate:"required,min=1,dive"`
}

// KitItemResponse ítem de kit con la parte relacionada.
type KitItemResponse struct {
	ID       string       `json:"id"`
	PartID   string       `json:"partId"`
	Quantity int          `json:"quantity"`
	Part     *PartSummary `json:"part,omitempty"`
}

// KitResponse salida de un kit.
type KitResponse struct {
	ID           string            `json:"id"`
	BadgeNo      string            `json:"badgeNo"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	SellingPrice decimal.Decimal   `json:"sellingPrice"`
	TotalCost    decimal.Decimal   `json:"totalCost"`
	Status       string            `json:"status"`
	Items        []KitItemResponse `json:"items"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// KitListResponse lista paginada de kits.
type KitListResponse struct {
	Kits       []KitResponse `json:"kits"`
	Pagination Pagination    `json:"pagination"`
}
