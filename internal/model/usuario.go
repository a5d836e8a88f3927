package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles used across the back office.
const (
	RolContador      = "contador"
	RolAdministrador = "administrador"
	RolCajero        = "cajero"
)

// Usuario stores system users with role-based access.
// A user is a contador either by exact match on Rol or by membership in the
// Roles list (legacy records carry one or the other).
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Email        *string
	PasswordHash string   `gorm:"not null"`
	Rol          string   `gorm:"type:varchar(20);not null"`
	Roles        []string `gorm:"serializer:json;type:jsonb"`
	Activo       bool     `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TieneRol reports whether the user holds the given role, via either the
// primary Rol field or the Roles list.
func (u Usuario) TieneRol(rol string) bool {
	if u.Rol == rol {
		return true
	}
	for _, r := range u.Roles {
		if r == rol {
			return true
		}
	}
	return false
}
