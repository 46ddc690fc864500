package entity

// Estados comunes de los catálogos.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
