package dto

// CreateUserRequest is used by administrators to create new users.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=200"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
}

// UpdateUserRequest captures administrator-triggered partial updates.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin editor"`
}

// UserResponse represents user data returned to clients.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
