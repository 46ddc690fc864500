package entity

import "time"

// Store almacén físico; agrupa racks.
type Store struct {
	ID        string
	Code      string
	Name      string
	Address   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
