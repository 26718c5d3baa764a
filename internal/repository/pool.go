package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxPool is the subset of *pgxpool.Pool the repositories use.
type pgxPool interface {
	querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	_ pgxPool = (*pgxpool.Pool)(nil)
	_ querier = (pgx.Tx)(nil)
)

// ErrNotFound is wrapped by every per-entity not-found error.
var ErrNotFound = errors.New("not found")

// ErrConflict is wrapped by every uniqueness violation error.
var ErrConflict = errors.New("already in use")

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique violation on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// collectRows drains rows through scan, always returning a non-nil slice.
func collectRows[T any](rows pgx.Rows, what string, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", what, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return items, nil
}

// listFilter appends the public visibility predicate when activeOnly is set.
func listFilter(base string, activeOnly bool, orderBy string) string {
	if activeOnly {
		return base + " WHERE is_active = TRUE ORDER BY " + orderBy
	}
	return base + " ORDER BY " + orderBy
}

const displayOrder = "sort_order ASC, seq ASC"
