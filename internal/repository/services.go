package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gsccapital/website/api/internal/entity"
)

// ErrServiceNotFound is returned when no catalogue service matches the identifier.
var ErrServiceNotFound = fmt.Errorf("service %w", ErrNotFound)

// ServicesRepository persists the group-wide service catalogue.
type ServicesRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.Service, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	Create(ctx context.Context, svc *entity.Service) error
	Update(ctx context.Context, svc *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXServicesRepository implements ServicesRepository using pgx.
type PGXServicesRepository struct {
	pool pgxPool
}

// NewPGXServicesRepository wires a pgx backed repository.
func NewPGXServicesRepository(pool *pgxpool.Pool) *PGXServicesRepository {
	return &PGXServicesRepository{pool: pool}
}

const serviceColumns = `id, title, description, category, icon, image_url, is_active, sort_order, created_at, updated_at`

func (r *PGXServicesRepository) List(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	rows, err := r.pool.Query(ctx, listFilter(`SELECT `+serviceColumns+` FROM services`, activeOnly, displayOrder))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return collectRows(rows, "service", scanService)
}

func (r *PGXServicesRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := scanService(r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("query service: %w", err)
	}
	return &svc, nil
}

func (r *PGXServicesRepository) Create(ctx context.Context, svc *entity.Service) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO services (title, description, category, icon, image_url, is_active, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `, svc.Title, svc.Description, svc.Category, svc.Icon, svc.ImageURL, svc.IsActive, svc.Order)
	if err := row.Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *PGXServicesRepository) Update(ctx context.Context, svc *entity.Service) error {
	row := r.pool.QueryRow(ctx, `
        UPDATE services SET
            title = $2, description = $3, category = $4, icon = $5, image_url = $6,
            is_active = $7, sort_order = $8, updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at
    `, svc.ID, svc.Title, svc.Description, svc.Category, svc.Icon, svc.ImageURL, svc.IsActive, svc.Order)
	if err := row.Scan(&svc.CreatedAt, &svc.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *PGXServicesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func scanService(row pgx.Row) (entity.Service, error) {
	var s entity.Service
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Category, &s.Icon, &s.ImageURL, &s.IsActive, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
