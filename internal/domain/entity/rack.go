package entity

import "time"

// Rack estantería dentro de un almacén. RackNumber es único por almacén.
type Rack struct {
	ID          string
	RackNumber  string
	StoreID     string
	Description string
	Status      string
	Store       *Store // relación cargada en listados
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
