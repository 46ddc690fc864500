package repository

// Page ventana de paginación ya traducida a offset/limit.
type Page struct {
	Limit  int
	Offset int
}

// BrandFilter filtros de listado de marcas. Campos vacíos no filtran.
type BrandFilter struct {
	Status string
	Search string
}

// CategoryFilter filtros de listado de categorías.
type CategoryFilter struct {
	Status string
	Type   string
}

// PartFilter filtros de listado de partes.
type PartFilter struct {
	Status       string
	Search       string // partNo, masterPartNo o descripción
	Brand        string
	MainCategory string
	Origin       string
	Grade        string
	Page
}

// SupplierFilter filtros de listado de proveedores.
// SearchField restringe Search a una sola columna (name, code, email, phone, companyName).
type SupplierFilter struct {
	Search      string
	SearchField string
	Status      string
	Page
}

// RackFilter filtros de listado de racks.
type RackFilter struct {
	Search  string
	Status  string
	StoreID string
	Page
}

// KitFilter filtros de listado de kits.
type KitFilter struct {
	Search string
	Status string
	Page
}
