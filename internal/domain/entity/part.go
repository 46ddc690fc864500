package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part ítem del catálogo. Brand, MainCategory y SubCategory guardan el nombre, como en el sistema de origen.
type Part struct {
	ID           string
	PartNo       string // código único
	MasterPartNo string
	Description  string
	Brand        string
	MainCategory string
	SubCategory  string
	Origin       string
	Grade        string // A, B, C...
	UOM          string
	Cost         decimal.Decimal
	PriceA       decimal.Decimal
	PriceB       decimal.Decimal
	Status       string
	Quantity     int // stock actual; 0 si no hay fila en stock
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
