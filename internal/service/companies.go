package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
)

// CompaniesService exposes read/write operations for the company catalogue.
type CompaniesService struct {
	repo repository.CompaniesRepository
}

// NewCompaniesService creates a new instance of CompaniesService.
func NewCompaniesService(repo repository.CompaniesRepository) *CompaniesService {
	return &CompaniesService{repo: repo}
}

// ListCompanies returns companies in display order. Public callers pass
// activeOnly to hide inactive companies.
func (s *CompaniesService) ListCompanies(ctx context.Context, activeOnly bool) ([]entity.Company, error) {
	return s.repo.List(ctx, activeOnly)
}

// GetCompany returns one company with its ordered features and services.
func (s *CompaniesService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	return s.repo.Get(ctx, id)
}

// CreateCompany validates the payload, applies defaults and stores the company
// together with its children.
func (s *CompaniesService) CreateCompany(ctx context.Context, req dto.CompanyRequest) (*entity.Company, error) {
	company, err := buildCompany(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UpdateCompany replaces every scalar field and both child sets of the company.
func (s *CompaniesService) UpdateCompany(ctx context.Context, id uuid.UUID, req dto.CompanyRequest) (*entity.Company, error) {
	company, err := buildCompany(req)
	if err != nil {
		return nil, err
	}
	company.ID = id
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes the company and, by cascade, its children.
func (s *CompaniesService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func buildCompany(req dto.CompanyRequest) (*entity.Company, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.ImageURL = normalizeString(req.ImageURL)
	req.Features = slices.Clone(req.Features)
	req.Services = slices.Clone(req.Services)
	for i := range req.Features {
		req.Features[i].Title = strings.TrimSpace(req.Features[i].Title)
	}
	for i := range req.Services {
		req.Services[i].Title = strings.TrimSpace(req.Services[i].Title)
		req.Services[i].Description = normalizeString(req.Services[i].Description)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	companySlug, err := resolveSlug(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{
		Name:        req.Name,
		Slug:        companySlug,
		Description: req.Description,
		Icon:        strings.TrimSpace(req.Icon),
		ImageURL:    req.ImageURL,
		Color:       strings.TrimSpace(req.Color),
		IsActive:    boolOr(req.IsActive, true),
		Order:       intOr(req.Order, 0),
		Features:    make([]entity.CompanyFeature, 0, len(req.Features)),
		Services:    make([]entity.CompanyService, 0, len(req.Services)),
	}
	for i, f := range req.Features {
		company.Features = append(company.Features, entity.CompanyFeature{
			Title: f.Title,
			Order: intOr(f.Order, i),
		})
	}
	for i, svc := range req.Services {
		company.Services = append(company.Services, entity.CompanyService{
			Title:       svc.Title,
			Description: svc.Description,
			Order:       intOr(svc.Order, i),
		})
	}
	return company, nil
}

// resolveSlug derives a slug from name when none is supplied and rejects
// supplied slugs that are not URL-safe.
func resolveSlug(supplied, name string) (string, error) {
	supplied = strings.TrimSpace(supplied)
	if supplied == "" {
		derived := slug.Make(name)
		if derived == "" {
			return "", NewValidationError("slug", "required")
		}
		return derived, nil
	}
	if !slug.IsSlug(supplied) {
		return "", NewValidationError("slug", "slug")
	}
	return supplied, nil
}
