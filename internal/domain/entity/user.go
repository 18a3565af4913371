package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"     // administrador: acceso total, incluye ajustes
	RoleManager   = "manager"   // encargado de depósito
	RoleLogistics = "logistics" // logística
)

// User representa un usuario del sistema. Cada movimiento queda firmado por el
// usuario que lo realizó; la política de autorización vive en la capa HTTP.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca en plano
	Name         string
	Role         string
	CreatedAt    time.Time
}
