package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
)

// ErrCannotDeleteSelf stops an administrator from removing their own account.
var ErrCannotDeleteSelf = errors.New("cannot delete the signed-in account")

// UserService encapsulates administrative operations for users.
type UserService struct {
	repo repository.UsersRepository
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.UsersRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all users as DTOs.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, *toUserResponse(u))
	}
	return responses, nil
}

// CreateUser creates a new user with the supplied role, defaulting to editor.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Role == "" {
		req.Role = entity.RoleEditor
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, req.Email, req.Name, string(hashed), req.Role)
	if err != nil {
		return nil, err
	}
	return toUserResponse(*user), nil
}

// UpdateUser mutates selected user fields.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	update := repository.UserUpdate{
		Email: trimmedLower(req.Email),
		Name:  req.Name,
		Role:  trimmedLower(req.Role),
	}
	req.Email, req.Role = update.Email, update.Role
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if update.Email != nil && *update.Email == "" {
		return nil, NewValidationError("email", "required")
	}
	if update.Role != nil && *update.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) == "" {
		return nil, NewValidationError("password", "required")
	}
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}

	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		pwd := string(hashed)
		update.PasswordHash = &pwd
	}

	user, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return toUserResponse(*user), nil
}

// DeleteUser removes a user by id. actorID is the caller's own account.
func (s *UserService) DeleteUser(ctx context.Context, actorID string, id uuid.UUID) error {
	if actorID == id.String() {
		return ErrCannotDeleteSelf
	}
	return s.repo.Delete(ctx, id)
}

func trimmedLower(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*value))
	return &v
}

func toUserResponse(u entity.User) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID.String(), Email: u.Email, Name: u.Name, Role: u.Role}
}
