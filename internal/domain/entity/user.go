package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleStoreKeeper = "storekeeper"
	RoleAccountant  = "accountant"
	RoleSales       = "sales"
)

// User usuario del sistema. Solo se usa para el login; el resto de rutas confía en el token.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
