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

var (
	// ErrCompanyNotFound is returned when no company matches the identifier.
	ErrCompanyNotFound = fmt.Errorf("company %w", ErrNotFound)
	// ErrSlugTaken is returned when another company already uses the slug.
	ErrSlugTaken = fmt.Errorf("slug %w", ErrConflict)
)

// CompaniesRepository describes persistence operations for companies and their children.
type CompaniesRepository interface {
	List(ctx context.Context, activeOnly bool) ([]entity.Company, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

const companyColumns = `id, name, slug, description, icon, image_url, color, is_active, sort_order, created_at, updated_at`

// List returns companies in display order with their features and services attached.
func (r *PGXCompaniesRepository) List(ctx context.Context, activeOnly bool) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, listFilter(`SELECT `+companyColumns+` FROM companies`, activeOnly, displayOrder))
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	companies, err := collectRows(rows, "company", scanCompany)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return companies, nil
	}

	ids := make([]uuid.UUID, len(companies))
	for i := range companies {
		ids[i] = companies[i].ID
	}
	features, services, err := r.loadChildren(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		companies[i].Features = orEmpty(features[companies[i].ID])
		companies[i].Services = orEmpty(services[companies[i].ID])
	}
	return companies, nil
}

// Get fetches one company regardless of its visibility.
func (r *PGXCompaniesRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("query company: %w", err)
	}

	features, services, err := r.loadChildren(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	company.Features = orEmpty(features[id])
	company.Services = orEmpty(services[id])
	return &company, nil
}

// Create inserts the company and its children in one transaction. Generated
// identifiers and timestamps are written back into company.
func (r *PGXCompaniesRepository) Create(ctx context.Context, company *entity.Company) error {
	if company == nil {
		return fmt.Errorf("company payload is nil")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("start company create tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
        INSERT INTO companies (name, slug, description, icon, image_url, color, is_active, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `, company.Name, company.Slug, company.Description, company.Icon, company.ImageURL, company.Color, company.IsActive, company.Order)
	if err := row.Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt); err != nil {
		if isUniqueViolation(err, "companies_slug_key") {
			return ErrSlugTaken
		}
		return fmt.Errorf("insert company: %w", err)
	}

	if err := insertChildren(ctx, tx, company); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit company create: %w", err)
	}
	return nil
}

// Update replaces the scalar fields and the full child sets of an existing
// company inside one transaction.
func (r *PGXCompaniesRepository) Update(ctx context.Context, company *entity.Company) error {
	if company == nil {
		return fmt.Errorf("company payload is nil")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("start company update tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
        UPDATE companies SET
            name = $2,
            slug = $3,
            description = $4,
            icon = $5,
            image_url = $6,
            color = $7,
            is_active = $8,
            sort_order = $9,
            updated_at = NOW()
        WHERE id = $1
        RETURNING created_at, updated_at
    `, company.ID, company.Name, company.Slug, company.Description, company.Icon, company.ImageURL, company.Color, company.IsActive, company.Order)
	if err := row.Scan(&company.CreatedAt, &company.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCompanyNotFound
		}
		if isUniqueViolation(err, "companies_slug_key") {
			return ErrSlugTaken
		}
		return fmt.Errorf("update company: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM company_features WHERE company_id = $1`, company.ID); err != nil {
		return fmt.Errorf("clear company features: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM company_services WHERE company_id = $1`, company.ID); err != nil {
		return fmt.Errorf("clear company services: %w", err)
	}

	if err := insertChildren(ctx, tx, company); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit company update: %w", err)
	}
	return nil
}

// Delete removes a company; its features and services cascade.
func (r *PGXCompaniesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func insertChildren(ctx context.Context, q querier, company *entity.Company) error {
	for i := range company.Features {
		feature := &company.Features[i]
		feature.CompanyID = company.ID
		row := q.QueryRow(ctx, `
            INSERT INTO company_features (company_id, title, sort_order)
            VALUES ($1, $2, $3)
            RETURNING id, created_at, updated_at
        `, company.ID, feature.Title, feature.Order)
		if err := row.Scan(&feature.ID, &feature.CreatedAt, &feature.UpdatedAt); err != nil {
			return fmt.Errorf("insert company feature %q: %w", feature.Title, err)
		}
	}

	for i := range company.Services {
		service := &company.Services[i]
		service.CompanyID = company.ID
		row := q.QueryRow(ctx, `
            INSERT INTO company_services (company_id, title, description, sort_order)
            VALUES ($1, $2, $3, $4)
            RETURNING id, created_at, updated_at
        `, company.ID, service.Title, service.Description, service.Order)
		if err := row.Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt); err != nil {
			return fmt.Errorf("insert company service %q: %w", service.Title, err)
		}
	}

	company.Features = orEmpty(company.Features)
	company.Services = orEmpty(company.Services)
	return nil
}

func (r *PGXCompaniesRepository) loadChildren(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]entity.CompanyFeature, map[uuid.UUID][]entity.CompanyService, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, company_id, title, sort_order, created_at, updated_at
        FROM company_features
        WHERE company_id = ANY($1)
        ORDER BY sort_order ASC, seq ASC
    `, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("list company features: %w", err)
	}
	features, err := collectRows(rows, "company feature", func(row pgx.Row) (entity.CompanyFeature, error) {
		var f entity.CompanyFeature
		err := row.Scan(&f.ID, &f.CompanyID, &f.Title, &f.Order, &f.CreatedAt, &f.UpdatedAt)
		return f, err
	})
	if err != nil {
		return nil, nil, err
	}

	rows, err = r.pool.Query(ctx, `
        SELECT id, company_id, title, description, sort_order, created_at, updated_at
        FROM company_services
        WHERE company_id = ANY($1)
        ORDER BY sort_order ASC, seq ASC
    `, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("list company services: %w", err)
	}
	services, err := collectRows(rows, "company service", func(row pgx.Row) (entity.CompanyService, error) {
		var s entity.CompanyService
		err := row.Scan(&s.ID, &s.CompanyID, &s.Title, &s.Description, &s.Order, &s.CreatedAt, &s.UpdatedAt)
		return s, err
	})
	if err != nil {
		return nil, nil, err
	}

	featuresByCompany := make(map[uuid.UUID][]entity.CompanyFeature, len(ids))
	for _, f := range features {
		featuresByCompany[f.CompanyID] = append(featuresByCompany[f.CompanyID], f)
	}
	servicesByCompany := make(map[uuid.UUID][]entity.CompanyService, len(ids))
	for _, s := range services {
		servicesByCompany[s.CompanyID] = append(servicesByCompany[s.CompanyID], s)
	}
	return featuresByCompany, servicesByCompany, nil
}

func scanCompany(row pgx.Row) (entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.ImageURL, &c.Color, &c.IsActive, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
