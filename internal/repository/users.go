package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gsccapital/website/api/internal/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup criteria.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	// ErrEmailDuplicate is returned when another account already uses the email.
	ErrEmailDuplicate = fmt.Errorf("email %w", ErrConflict)
)

// UserUpdate lists the optional fields of a partial user update.
type UserUpdate struct {
	Email        *string
	Name         *string
	PasswordHash *string
	Role         *string
}

// UsersRepository declares persistence operations for admin accounts.
type UsersRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, email, name, passwordHash, role string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXUsersRepository implements UsersRepository with pgx.
type PGXUsersRepository struct {
	pool pgxPool
}

// NewPGXUsersRepository instantiates a users repository.
func NewPGXUsersRepository(pool *pgxpool.Pool) *PGXUsersRepository {
	return &PGXUsersRepository{pool: pool}
}

const userColumns = `id, email, name, role, password_hash, created_at, updated_at`

// FindByEmail fetches a user by email if present.
func (r *PGXUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &user, nil
}

// FindByID retrieves a user by identifier.
func (r *PGXUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new user row.
func (r *PGXUsersRepository) Create(ctx context.Context, email, name, passwordHash, role string) (*entity.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
        INSERT INTO users (email, name, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING `+userColumns, email, name, passwordHash, role))
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, ErrEmailDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// List returns all users ordered by creation date (desc).
func (r *PGXUsersRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return collectRows(rows, "user", scanUser)
}

// Update patches user attributes.
func (r *PGXUsersRepository) Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*entity.User, error) {
	setClauses := make([]string, 0, 5)
	args := make([]any, 0, 5)
	idx := 1

	for _, field := range []struct {
		column string
		value  *string
	}{
		{"email", update.Email},
		{"name", update.Name},
		{"password_hash", update.PasswordHash},
		{"role", update.Role},
	} {
		if field.value == nil {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field.column, idx))
		args = append(args, *field.value)
		idx++
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`, strings.Join(setClauses, ", "), idx, userColumns)

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		if isUniqueViolation(err, "users_email_key") {
			return nil, ErrEmailDuplicate
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

// Delete removes a user by id.
func (r *PGXUsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
