package dto

import "github.com/google/uuid"

// ContactRequest is a public contact form submission.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"required,email,max=320"`
	Company *string `json:"company" validate:"omitempty,max=200"`
	Phone   *string `json:"phone" validate:"omitempty,max=40"`
	Message string  `json:"message" validate:"required,max=5000"`
}

// ContactReadRequest toggles the read flag of a message.
type ContactReadRequest struct {
	IsRead *bool `json:"isRead" validate:"required"`
}

// ContactAccepted is returned after a submission is stored.
type ContactAccepted struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}
