package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User representa un usuario del sistema. El núcleo de órdenes lo trata como
// dato de referencia de solo lectura; el subsistema de autenticación es el
// dueño del ciclo de vida.
type User struct {
	ID           int64
	Username     string // único
	Email        string
	PasswordHash string // argon/bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, client
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
