package entity

import "time"

// Tipos de categoría.
const (
	CategoryTypeMain = "main"
	CategoryTypeSub  = "sub"
)

// Category categoría de partes. Las subcategorías cuelgan de una principal (ParentID).
type Category struct {
	ID          string
	Name        string
	Type        string // main, sub
	ParentID    *string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
