package entity

import "time"

// Estados de un traslado.
const (
	TransferStatusDraft     = "draft"
	TransferStatusCompleted = "completed"
)

// StockTransfer traslado entre almacenes persistido en archivo JSON (sin tabla todavía).
// Las etiquetas json definen el formato del archivo.
type StockTransfer struct {
	ID           string              `json:"id"`
	TransferNo   string              `json:"transferNo"`
	TransferDate string              `json:"transferDate"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes"`
	Items        []StockTransferItem `json:"items"`
	FromStoreID  string              `json:"fromStoreId"`
	ToStoreID    string              `json:"toStoreId"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// StockTransferItem línea de un traslado.
type StockTransferItem struct {
	PartID      string `json:"partId"`
	PartNo      string `json:"partNo"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	FromRackID  string `json:"fromRackId,omitempty"`
	ToRackID    string `json:"toRackId,omitempty"`
}
