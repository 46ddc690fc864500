package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kit conjunto de partes que se vende como una unidad.
type Kit struct {
	ID           string
	BadgeNo      string
	Name         string
	Description  string
	SellingPrice decimal.Decimal
	TotalCost    decimal.Decimal
	Status       string
	Items        []KitItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// KitItem parte incluida en un kit.
type KitItem struct {
	ID       string
	KitID    string
	PartID   string
	Quantity int
	Part     *Part
}
