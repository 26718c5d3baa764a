package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func newMigrator(pool *pgxpool.Pool) (*migrate.Migrate, error) {
	if pool == nil {
		return nil, errors.New("database pool must not be nil")
	}

	driver, err := postgres.WithInstance(stdlib.OpenDBFromPool(pool), &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create migrate driver: %w", err)
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// Migrate applies every pending up migration.
func Migrate(pool *pgxpool.Pool) error {
	m, err := newMigrator(pool)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("no pending migrations")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	slog.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}

// Rollback reverts the given number of migrations.
func Rollback(pool *pgxpool.Pool, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	m, err := newMigrator(pool)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil {
		return fmt.Errorf("rollback migrations: %w", err)
	}
	return nil
}

// MigrationVersion reports the currently applied schema version.
func MigrationVersion(pool *pgxpool.Pool) (uint, bool, error) {
	m, err := newMigrator(pool)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
