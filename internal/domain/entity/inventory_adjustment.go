package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryAdjustment cabecera de un ajuste manual de stock. Es dueña de sus ítems.
type InventoryAdjustment struct {
	ID           string
	AdjustmentNo *string
	Total        decimal.Decimal
	Date         time.Time
	Notes        *string
	CreatedBy    *string
	Items        []AdjustmentItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdjustmentItem línea de un ajuste. NewQuantity = PreviousQuantity + AdjustedQuantity,
// fijado al crear y nunca recalculado.
type AdjustmentItem struct {
	ID               string
	AdjustmentID     string
	PartID           *string
	PartNo           string
	Description      *string
	PreviousQuantity int
	AdjustedQuantity int
	NewQuantity      int
	Reason           *string
	Part             *Part
}
