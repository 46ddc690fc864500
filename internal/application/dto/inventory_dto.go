package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAdjustmentRequest cuerpo de POST /inventory-adjustments.
// Date acepta RFC3339 o YYYY-MM-DD; vacío = ahora. La lista de ítems se valida en el caso de uso.
type CreateAdjustmentRequest struct {
	AdjustmentNo *string                 `json:"adjustmentNo"`
	Total        decimal.Decimal         `json:"total"`
	Date         string                  `json:"date"`
	Notes        *string                 `json:"notes"`
	Items        []AdjustmentItemRequest `json:"items" validate:"dive"`
}

// AdjustmentItemRequest línea del ajuste. Las cantidades ausentes valen 0.
type AdjustmentItemRequest struct {
	PartID           *string `json:"partId"`
	PartNo           string  `json:"partNo" validate:"required"`
	Description      *string `json:"description"`
	PreviousQuantity int     `json:"previousQuantity"`
	AdjustedQuantity int     `json:"adjustedQuantity"`
	Reason           *string `json:"reason"`
}

// AdjustmentItemResponse línea persistida con la parte relacionada.
type AdjustmentItemResponse struct {
	ID               string       `json:"id"`
	PartID           *string      `json:"partId"`
	PartNo           string       `json:"partNo"`
	Description      *string      `json:"description"`
	PreviousQuantity int          `json:"previousQuantity"`
	AdjustedQuantity int          `json:"adjustedQuantity"`
	NewQuantity      int          `json:"newQuantity"`
	Reason           *string      `json:"reason"`
	Part             *PartSummary `json:"part"`
}

// AdjustmentResponse cabecera del ajuste con sus ítems.
type AdjustmentResponse struct {
	ID           string                   `json:"id"`
	AdjustmentNo *string                  `json:"adjustmentNo"`
	Total        decimal.Decimal          `json:"total"`
	Date         time.Time                `json:"date"`
	Notes        *string                  `json:"notes"`
	CreatedBy    *string                  `json:"createdBy"`
	Items        []AdjustmentItemResponse `json:"items"`
	CreatedAt    time.Time                `json:"createdAt"`
}

// AdjustmentListResponse lista paginada de ajustes.
type AdjustmentListResponse struct {
	Adjustments []AdjustmentResponse `json:"adjustments"`
	Pagination  Pagination           `json:"pagination"`
}

// CreateTransferRequest cuerpo de POST /stock-transfers.
type CreateTransferRequest struct {
	TransferNo   string                `json:"transferNo" validate:"required"`
	TransferDate string                `json:"transferDate" validate:"required"`
	Status       string                `json:"status" validate:"omitempty,oneof=draft completed"`
	Notes        string                `json:"notes"`
	FromStoreID  string                `json:"fromStoreId"`
	ToStoreID    string                `json:"toStoreId"`
	Items        []TransferItemRequest `json:"items" validate:"required,min=1,dive"`
}

// TransferItemRequest línea del traslado.
type TransferItemRequest struct {
	PartID      string `json:"partId"`
	PartNo      string `json:"partNo" validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	FromRackID  string `json:"fromRackId"`
	ToRackID    string `json:"toRackId"`
}
