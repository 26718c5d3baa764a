package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gsccapital/website/api/internal/auth"
	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// AuthService coordinates credential validation and token issuance.
type AuthService struct {
	users repository.UsersRepository
	jwt   *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UsersRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager}
}

// Login validates credentials and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwt.TTL().Seconds()),
	}, nil
}

// Me returns the account behind a token subject.
func (s *AuthService) Me(ctx context.Context, subject string) (*dto.UserResponse, error) {
	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(*user), nil
}

// EnsureAdmin creates an admin account with the given credentials unless one
// with that email already exists. An existing account without a password
// gets the password set and is promoted to admin.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, name, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, errors.New("admin email and password must not be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	hash := string(hashed)

	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.PasswordHash != "" {
			return false, nil
		}
		role := entity.RoleAdmin
		if _, err := s.users.Update(ctx, existing.ID, repository.UserUpdate{PasswordHash: &hash, Role: &role}); err != nil {
			return false, err
		}
		return true, nil
	case !errors.Is(err, repository.ErrUserNotFound):
		return false, err
	}

	if _, err := s.users.Create(ctx, email, name, hash, entity.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}
