package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperUser = "superuser"
	RoleStaff     = "staff"
	RoleCustomer  = "customer"
)

// User usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Role         string // superuser, staff, customer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanMutateCatalog superusuario o staff pueden crear, editar y borrar en el catálogo.
func CanMutateCatalog(role string) bool {
	return role == RoleSuperUser || role == RoleStaff
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleSuperUser || role == RoleStaff || role == RoleCustomer
}
