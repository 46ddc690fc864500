package entity

import "time"

// Supplier proveedor de repuestos.
type Supplier struct {
	ID            string
	Code          string
	Name          string
	CompanyName   string
	Email         string
	Phone         string
	Address       string
	City          string
	Country       string
	ContactPerson string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
