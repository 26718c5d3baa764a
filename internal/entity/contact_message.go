package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a contact form submission. Only IsRead changes after creation.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
