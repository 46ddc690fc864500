package entity

import "time"

// Brand marca de repuestos. Las partes la referencian por nombre, no por ID.
type Brand struct {
	ID        string
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
