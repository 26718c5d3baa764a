package entity

import (
	"time"

	"github.com/google/uuid"
)

// Roles recognised by the admin API.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is an administrator account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
