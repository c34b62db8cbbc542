package entity

import "time"

// Roles válidos para User. Un usuario puede acumular varios
// (ej. un técnico que también registra empresas como cliente).
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
	RoleTecnico = "tecnico"
)

// User representa un usuario del sistema. La cédula y el email son únicos.
// Los roles solo los modifica un admin vía el caso de uso de actualización de roles.
type User struct {
	ID           string
	Cedula       string // cédula de identidad, única
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Roles        []string // ver constantes Role*
	Status       string   // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole indica si el usuario tiene el rol dado.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin atajo para HasRole(RoleAdmin).
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
