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

// ErrStatisticNotFound is returned when no statistic matches the identifier.
var ErrStatisticNotFound = fmt.Errorf("statistic %w", ErrNotFound)

// StatisticsRepository persists headline figures.
type StatisticsRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.Statistic, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Statistic, error)
	Create(ctx context.Context, stat *entity.Statistic) error
	Update(ctx context.Context, stat *entity.Statistic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXStatisticsRepository implements StatisticsRepository using pgx.
type PGXStatisticsRepository struct {
	pool pgxPool
}

// NewPGXStatisticsRepository wires a pgx backed repository.
func NewPGXStatisticsRepository(pool *pgxpool.Pool) *PGXStatisticsRepository {
	return &PGXStatisticsRepository{pool: pool}
}

const statisticColumns = `id, label, value, icon, image_url, is_active, sort_order, created_at, updated_at`

func (r *PGXStatisticsRepository) List(ctx context.Context, activeOnly bool) ([]entity.Statistic, error) {
	rows, err := r.pool.Query(ctx, listFilter(`SELECT `+statisticColumns+` FROM statistics`, activeOnly, displayOrder))
	if err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	return collectRows(rows, "statistic", scanStatistic)
}

func (r *PGXStatisticsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Statistic, error) {
	stat, err := scanStatistic(r.pool.QueryRow(ctx, `SELECT `+statisticColumns+` FROM statistics WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatisticNotFound
		}
		return nil, fmt.Errorf("query statistic: %w", err)
	}
	return &stat, nil
}

func (r *PGXStatisticsRepository) Create(ctx context.Context, stat *entity.Statistic) error {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO statistics (label, value, icon, image_url, is_active, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `, stat.Label, stat.Value, stat.Icon, stat.ImageURL, stat.IsActive, stat.Order)
	if err := row.Scan(&stat.ID, &stat.CreatedAt, &stat.UpdatedAt); err != nil {
		return fmt.Errorf("insert statistic: %w", err)
	}
	return nil
}

func (r *PGXStatisticsRepository) Update(ctx context.Context, stat *entity.Statistic) error {
	row := r.pool.QueryRow(ctx, `
        UPDATE statistics SET
            label = $2, value = $3, icon = $4, image_url = $5,
            is_active = $6, sort_order = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at
    `, stat.ID, stat.Label, stat.Value, stat.Icon, stat.ImageURL, stat.IsActive, stat.Order)
	if err := row.Scan(&stat.CreatedAt, &stat.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrStatisticNotFound
		}
		return fmt.Errorf("update statistic: %w", err)
	}
	return nil
}

func (r *PGXStatisticsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM statistics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete statistic: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrStatisticNotFound
	}
	return nil
}

func scanStatistic(row pgx.Row) (entity.Statistic, error) {
	var s entity.Statistic
	err := row.Scan(&s.ID, &s.Label, &s.Value, &s.Icon, &s.ImageURL, &s.IsActive, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
