package model

import (
	"time"

	"github.com/google/uuid"
)

// Role / status values stored in Usuario.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// Usuario stores seller accounts. Accounts are never hard-deleted; blocking
// flips Status to "blocked" and the login path rejects blocked accounts.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Telefone     *string   `gorm:"type:varchar(30)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
	// Plano holds the subscription tier id ("basico" | "profissional" | "premium").
	// New accounts start on the base tier until a plan is selected.
	Plano     string `gorm:"type:varchar(20);not null;default:'basico'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Vitrine *Vitrine `gorm:"foreignKey:UsuarioID"`
}
