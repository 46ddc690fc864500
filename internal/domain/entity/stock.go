package entity

import "time"

// Stock cantidad disponible de una parte. Como máximo una fila por parte.
type Stock struct {
	PartID    string
	Quantity  int
	UpdatedAt time.Time
}
