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

// ErrSectionNotFound is returned when no website section matches the identifier.
var ErrSectionNotFound = fmt.Errorf("section %w", ErrNotFound)

// SectionsRepository persists free-form website content blocks.
type SectionsRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.WebsiteSection, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.WebsiteSection, error)
	Create(ctx context.Context, section *entity.WebsiteSection) error
	Update(ctx context.Context, section *entity.WebsiteSection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXSectionsRepository implements SectionsRepository using pgx.
type PGXSectionsRepository struct {
	pool pgxPool
}

// NewPGXSectionsRepository wires a pgx backed repository.
func NewPGXSectionsRepository(pool *pgxpool.Pool) *PGXSectionsRepository {
	return &PGXSectionsRepository{pool: pool}
}

const sectionColumns = `id, title, subtitle, content, type, is_active, sort_order, created_at, updated_at`

func (r *PGXSectionsRepository) List(ctx context.Context, activeOnly bool) ([]entity.WebsiteSection, error) {
	rows, err := r.pool.Query(ctx, listFilter(`SELECT `+sectionColumns+` FROM website_sections`, activeOnly, displayOrder))
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return collectRows(rows, "section", scanSection)
}

func (r *PGXSectionsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.WebsiteSection, error) {
	section, err := scanSection(r.pool.QueryRow(ctx, `SELECT `+sectionColumns+` FROM website_sections WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("query section: %w", err)
	}
	return &section, nil
}

func (r *PGXSectionsRepository) Create(ctx context.Context, section *entity.WebsiteSection) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO website_sections (title, subtitle, content, type, is_active, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `, section.Title, section.Subtitle, section.Content, section.Type, section.IsActive, section.Order)
	if err := row.Scan(&section.ID, &section.CreatedAt, &section.UpdatedAt); err != nil {
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

func (r *PGXSectionsRepository) Update(ctx context.Context, section *entity.WebsiteSection) error {
	row := r.pool.QueryRow(ctx, `
        UPDATE website_sections SET
            title = $2, subtitle = $3, content = $4, type = $5,
            is_active = $6, sort_order = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at
    `, section.ID, section.Title, section.Subtitle, section.Content, section.Type, section.IsActive, section.Order)
	if err := row.Scan(&section.CreatedAt, &section.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSectionNotFound
		}
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

func (r *PGXSectionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM website_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrSectionNotFound
	}
	return nil
}

func scanSection(row pgx.Row) (entity.WebsiteSection, error) {
	var s entity.WebsiteSection
	err := row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Content, &s.Type, &s.IsActive, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
