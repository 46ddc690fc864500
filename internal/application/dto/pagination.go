package dto

import "math"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageRequest paginación por página para listados (?page=&limit=).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto: page >= 1, 1 <= limit <= MaxPageLimit.
// La página queda acotada para que (page-1)*limit no desborde int.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Page > math.MaxInt/p.Limit {
		p.Page = math.MaxInt / p.Limit
	}
}

// Offset filas a saltar para la página actual.
func (p PageRequest) Offset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt / p.Limit * p.Limit
	}
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination calcula totalPages = ceil(total/limit).
func NewPagination(p PageRequest, total int) Pagination {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: totalPages}
}
