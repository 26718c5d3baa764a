package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gsccapital/website/api/internal/database"
	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/repository"
)

// Seeder loads starter content through the same services the API uses, so
// seeded records get identical defaults and validation.
type Seeder struct {
	Companies    *CompaniesService
	Statistics   *StatisticsService
	Testimonials *TestimonialsService
	Catalog      *CatalogService
	Auth         *AuthService
}

// SeedResult counts what a seed run created.
type SeedResult struct {
	Companies    int
	Statistics   int
	Testimonials int
	Services     int
	AdminCreated bool
}

// Seed fills each content type that is still empty, so a run interrupted
// part way is completed by the next one. Companies whose slug already exists
// are skipped. The admin account is bootstrapped only when a password is
// supplied.
func (s *Seeder) Seed(ctx context.Context, data database.SeedData, adminEmail, adminPassword string) (SeedResult, error) {
	var (
		result SeedResult
		err    error
	)

	result.Companies, err = seedIfEmpty(ctx, "companies", data.Companies,
		func(ctx context.Context) (int, error) {
			existing, err := s.Companies.ListCompanies(ctx, false)
			return len(existing), err
		},
		func(ctx context.Context, req dto.CompanyRequest) error {
			_, err := s.Companies.CreateCompany(ctx, req)
			if errors.Is(err, repository.ErrSlugTaken) {
				slog.WarnContext(ctx, "seed company skipped", "slug", req.Slug)
				return errSeedSkipped
			}
			return err
		},
	)
	if err != nil {
		return result, err
	}

	result.Statistics, err = seedIfEmpty(ctx, "statistics", data.Statistics,
		func(ctx context.Context) (int, error) {
			existing, err := s.Statistics.List(ctx, false)
			return len(existing), err
		},
		func(ctx context.Context, req dto.StatisticRequest) error {
			_, err := s.Statistics.Create(ctx, req)
			return err
		},
	)
	if err != nil {
		return result, err
	}

	result.Testimonials, err = seedIfEmpty(ctx, "testimonials", data.Testimonials,
		func(ctx context.Context) (int, error) {
			existing, err := s.Testimonials.List(ctx, false)
			return len(existing), err
		},
		func(ctx context.Context, req dto.TestimonialRequest) error {
			_, err := s.Testimonials.Create(ctx, req)
			return err
		},
	)
	if err != nil {
		return result, err
	}

	result.Services, err = seedIfEmpty(ctx, "services", data.Services,
		func(ctx context.Context) (int, error) {
			existing, err := s.Catalog.List(ctx, false)
			return len(existing), err
		},
		func(ctx context.Context, req dto.ServiceRequest) error {
			_, err := s.Catalog.Create(ctx, req)
			return err
		},
	)
	if err != nil {
		return result, err
	}

	if adminEmail == "" {
		adminEmail = data.AdminEmail
	}
	if adminPassword == "" {
		slog.WarnContext(ctx, "ADMIN_PASSWORD not set, admin account not bootstrapped", "email", adminEmail)
		return result, nil
	}
	created, err := s.Auth.EnsureAdmin(ctx, adminEmail, data.AdminName, adminPassword)
	if err != nil {
		return result, fmt.Errorf("bootstrap admin: %w", err)
	}
	result.AdminCreated = created
	return result, nil
}

// errSeedSkipped marks an item that was left out without failing the run.
var errSeedSkipped = errors.New("seed item skipped")

// seedIfEmpty creates items when count reports no existing records of kind.
func seedIfEmpty[R any](
	ctx context.Context,
	kind string,
	items []R,
	count func(context.Context) (int, error),
	create func(context.Context, R) error,
) (int, error) {
	existing, err := count(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing %s: %w", kind, err)
	}
	if existing > 0 {
		slog.InfoContext(ctx, "content already present, skipping", "kind", kind, "count", existing)
		return 0, nil
	}

	created := 0
	for i, item := range items {
		if err := create(ctx, item); err != nil {
			if errors.Is(err, errSeedSkipped) {
				continue
			}
			return created, fmt.Errorf("seed %s #%d: %w", kind, i, err)
		}
		created++
	}
	return created, nil
}
