package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
)

// defaultRating is applied to testimonials submitted without a rating.
const defaultRating = 5

// StatisticsService manages headline figures.
type StatisticsService struct {
	repo repository.StatisticsRepository
}

// NewStatisticsService creates a StatisticsService.
func NewStatisticsService(repo repository.StatisticsRepository) *StatisticsService {
	return &StatisticsService{repo: repo}
}

// List returns statistics in display order, optionally hiding inactive ones.
func (s *StatisticsService) List(ctx context.Context, activeOnly bool) ([]entity.Statistic, error) {
	return s.repo.List(ctx, activeOnly)
}

// Get returns one statistic regardless of visibility.
func (s *StatisticsService) Get(ctx context.Context, id uuid.UUID) (*entity.Statistic, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the payload, applies defaults and stores the statistic.
func (s *StatisticsService) Create(ctx context.Context, req dto.StatisticRequest) (*entity.Statistic, error) {
	stat, err := buildStatistic(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// Update replaces every field of the statistic.
func (s *StatisticsService) Update(ctx context.Context, id uuid.UUID, req dto.StatisticRequest) (*entity.Statistic, error) {
	stat, err := buildStatistic(req)
	if err != nil {
		return nil, err
	}
	stat.ID = id
	if err := s.repo.Update(ctx, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// Delete removes the statistic.
func (s *StatisticsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func buildStatistic(req dto.StatisticRequest) (*entity.Statistic, error) {
	req.Label = strings.TrimSpace(req.Label)
	req.Value = strings.TrimSpace(req.Value)
	req.ImageURL = normalizeString(req.ImageURL)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return &entity.Statistic{
		Label:    req.Label,
		Value:    req.Value,
		Icon:     strings.TrimSpace(req.Icon),
		ImageURL: req.ImageURL,
		IsActive: boolOr(req.IsActive, true),
		Order:    intOr(req.Order, 0),
	}, nil
}

// TestimonialsService manages customer quotes.
type TestimonialsService struct {
	repo repository.TestimonialsRepository
}

// NewTestimonialsService creates a TestimonialsService.
func NewTestimonialsService(repo repository.TestimonialsRepository) *TestimonialsService {
	return &TestimonialsService{repo: repo}
}

// List returns testimonials in display order, optionally hiding inactive ones.
func (s *TestimonialsService) List(ctx context.Context, activeOnly bool) ([]entity.Testimonial, error) {
	return s.repo.List(ctx, activeOnly)
}

// Get returns one testimonial regardless of visibility.
func (s *TestimonialsService) Get(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the payload, applies defaults and stores the testimonial.
func (s *TestimonialsService) Create(ctx context.Context, req dto.TestimonialRequest) (*entity.Testimonial, error) {
	t, err := buildTestimonial(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces every field of the testimonial.
func (s *TestimonialsService) Update(ctx context.Context, id uuid.UUID, req dto.TestimonialRequest) (*entity.Testimonial, error) {
	t, err := buildTestimonial(req)
	if err != nil {
		return nil, err
	}
	t.ID = id
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the testimonial.
func (s *TestimonialsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func buildTestimonial(req dto.TestimonialRequest) (*entity.Testimonial, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Content = strings.TrimSpace(req.Content)
	req.Company = normalizeString(req.Company)
	req.Role = normalizeString(req.Role)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return &entity.Testimonial{
		Name:     req.Name,
		Company:  req.Company,
		Role:     req.Role,
		Content:  req.Content,
		Rating:   intOr(req.Rating, defaultRating),
		IsActive: boolOr(req.IsActive, true),
		Order:    intOr(req.Order, 0),
	}, nil
}

// CatalogService manages the group-wide service catalogue.
type CatalogService struct {
	repo repository.ServicesRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(repo repository.ServicesRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns catalogue services in display order, optionally hiding inactive ones.
func (s *CatalogService) List(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	return s.repo.List(ctx, activeOnly)
}

// Get returns one catalogue service regardless of visibility.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the payload, applies defaults and stores the catalogue service.
func (s *CatalogService) Create(ctx context.Context, req dto.ServiceRequest) (*entity.Service, error) {
	svc, err := buildService(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Update replaces every field of the catalogue service.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req dto.ServiceRequest) (*entity.Service, error) {
	svc, err := buildService(req)
	if err != nil {
		return nil, err
	}
	svc.ID = id
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete removes the catalogue service.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func buildService(req dto.ServiceRequest) (*entity.Service, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	req.ImageURL = normalizeString(req.ImageURL)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return &entity.Service{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Icon:        strings.TrimSpace(req.Icon),
		ImageURL:    req.ImageURL,
		IsActive:    boolOr(req.IsActive, true),
		Order:       intOr(req.Order, 0),
	}, nil
}

// SectionsService manages free-form website content blocks.
type SectionsService struct {
	repo repository.SectionsRepository
}

// NewSectionsService creates a SectionsService.
func NewSectionsService(repo repository.SectionsRepository) *SectionsService {
	return &SectionsService{repo: repo}
}

// List returns website sections in display order, optionally hiding inactive ones.
func (s *SectionsService) List(ctx context.Context, activeOnly bool) ([]entity.WebsiteSection, error) {
	return s.repo.List(ctx, activeOnly)
}

// Get returns one section regardless of visibility.
func (s *SectionsService) Get(ctx context.Context, id uuid.UUID) (*entity.WebsiteSection, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the payload, applies defaults and stores the section.
func (s *SectionsService) Create(ctx context.Context, req dto.SectionRequest) (*entity.WebsiteSection, error) {
	section, err := buildSection(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// Update replaces every field of the section.
func (s *SectionsService) Update(ctx context.Context, id uuid.UUID, req dto.SectionRequest) (*entity.WebsiteSection, error) {
	section, err := buildSection(req)
	if err != nil {
		return nil, err
	}
	section.ID = id
	if err := s.repo.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// Delete removes the section.
func (s *SectionsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func buildSection(req dto.SectionRequest) (*entity.WebsiteSection, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Subtitle = normalizeString(req.Subtitle)
	req.Content = strings.TrimSpace(req.Content)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return &entity.WebsiteSection{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Content:  req.Content,
		Type:     req.Type,
		IsActive: boolOr(req.IsActive, true),
		Order:    intOr(req.Order, 0),
	}, nil
}
