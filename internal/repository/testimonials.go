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

// ErrTestimonialNotFound is returned when no testimonial matches the identifier.
var ErrTestimonialNotFound = fmt.Errorf("testimonial %w", ErrNotFound)

// TestimonialsRepository persists customer quotes.
type TestimonialsRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.Testimonial, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	Create(ctx context.Context, t *entity.Testimonial) error
	Update(ctx context.Context, t *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXTestimonialsRepository implements TestimonialsRepository using pgx.
type PGXTestimonialsRepository struct {
	pool pgxPool
}

// NewPGXTestimonialsRepository wires a pgx backed repository.
func NewPGXTestimonialsRepository(pool *pgxpool.Pool) *PGXTestimonialsRepository {
	return &PGXTestimonialsRepository{pool: pool}
}

const testimonialColumns = `id, name, company, role, content, rating, is_active, sort_order, created_at, updated_at`

func (r *PGXTestimonialsRepository) List(ctx context.Context, activeOnly bool) ([]entity.Testimonial, error) {
	rows, err := r.pool.Query(ctx, listFilter(`SELECT `+testimonialColumns+` FROM testimonials`, activeOnly, displayOrder))
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return collectRows(rows, "testimonial", scanTestimonial)
}

func (r *PGXTestimonialsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	t, err := scanTestimonial(r.pool.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("query testimonial: %w", err)
	}
	return &t, nil
}

func (r *PGXTestimonialsRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO testimonials (name, company, role, content, rating, is_active, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `, t.Name, t.Company, t.Role, t.Content, t.Rating, t.IsActive, t.Order)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

func (r *PGXTestimonialsRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	row := r.pool.QueryRow(ctx, `
        UPDATE testimonials SET
            name = $2, company = $3, role = $4, content = $5, rating = $6,
            is_active = $7, sort_order = $8, updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at
    `, t.ID, t.Name, t.Company, t.Role, t.Content, t.Rating, t.IsActive, t.Order)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

func (r *PGXTestimonialsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func scanTestimonial(row pgx.Row) (entity.Testimonial, error) {
	var t entity.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Company, &t.Role, &t.Content, &t.Rating, &t.IsActive, &t.Order, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
