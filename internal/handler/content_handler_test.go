package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
	"github.com/gsccapital/website/api/internal/service"
)

type contentServiceStub[T any, R any] struct {
	list   func(ctx context.Context, activeOnly bool) ([]T, error)
	get    func(ctx context.Context, id uuid.UUID) (*T, error)
	create func(ctx context.Context, req R) (*T, error)
	update func(ctx context.Context, id uuid.UUID, req R) (*T, error)
	delete func(ctx context.Context, id uuid.UUID) error
}

func (s *contentServiceStub[T, R]) List(ctx context.Context, activeOnly bool) ([]T, error) {
	if s.list != nil {
		return s.list(ctx, activeOnly)
	}
	return nil, errNotImplemented
}

func (s *contentServiceStub[T, R]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return nil, errNotImplemented
}

func (s *contentServiceStub[T, R]) Create(ctx context.Context, req R) (*T, error) {
	if s.create != nil {
		return s.create(ctx, req)
	}
	return nil, errNotImplemented
}

func (s *contentServiceStub[T, R]) Update(ctx context.Context, id uuid.UUID, req R) (*T, error) {
	if s.update != nil {
		return s.update(ctx, id, req)
	}
	return nil, errNotImplemented
}

func (s *contentServiceStub[T, R]) Delete(ctx context.Context, id uuid.UUID) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return errNotImplemented
}

// Compile-time checks that the concrete services fit the generic handler.
var (
	_ ContentService[entity.Statistic, dto.StatisticRequest]       = (*service.StatisticsService)(nil)
	_ ContentService[entity.Testimonial, dto.TestimonialRequest]   = (*service.TestimonialsService)(nil)
	_ ContentService[entity.Service, dto.ServiceRequest]           = (*service.CatalogService)(nil)
	_ ContentService[entity.WebsiteSection, dto.SectionRequest]    = (*service.SectionsService)(nil)
)

func TestContentHandler_List(t *testing.T) {
	e := echo.New()
	stub := &contentServiceStub[entity.Statistic, dto.StatisticRequest]{
		list: func(ctx context.Context, activeOnly bool) ([]entity.Statistic, error) {
			if activeOnly {
				return []entity.Statistic{{Label: "Clients", Value: "500+", IsActive: true}}, nil
			}
			return []entity.Statistic{{Label: "Clients", IsActive: true}, {Label: "Hidden"}}, nil
		},
	}
	handler := NewContentHandler(stub, "statistic", "statistics")

	rec := httptest.NewRecorder()
	if err := handler.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/statistics", nil), rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var public []entity.Statistic
	if err := json.Unmarshal(rec.Body.Bytes(), &public); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("expected 1 active statistic, got %d", len(public))
	}

	rec = httptest.NewRecorder()
	_ = handler.ListAdmin(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/statistics", nil), rec))
	var all []entity.Statistic
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected admin list to include inactive records, got %d", len(all))
	}

	stub.list = func(ctx context.Context, activeOnly bool) ([]entity.Statistic, error) {
		return nil, errors.New("db down")
	}
	rec = httptest.NewRecorder()
	_ = handler.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/statistics", nil), rec))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "failed to list statistics" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestContentHandler_Create(t *testing.T) {
	e := echo.New()
	// Real service so validation and defaults run end to end.
	repo := &testimonialsRepoStub{}
	handler := NewContentHandler(service.NewTestimonialsService(repo), "testimonial", "testimonials")

	t.Run("defaults applied", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/testimonials", `{"name":"Jane","content":"Great"}`), rec)
		if err := handler.Create(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var got entity.Testimonial
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Rating != 5 || !got.IsActive || got.Order != 0 {
			t.Fatalf("unexpected defaults: %+v", got)
		}
	})

	t.Run("validation details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/testimonials", `{"name":"Jane","content":"Great","rating":9}`), rec)
		_ = handler.Create(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var body ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Error != "validation failed" || body.Details["rating"] != "max=5" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestContentHandler_ByID(t *testing.T) {
	e := echo.New()
	known := uuid.New()
	stub := &contentServiceStub[entity.WebsiteSection, dto.SectionRequest]{
		get: func(ctx context.Context, id uuid.UUID) (*entity.WebsiteSection, error) {
			if id != known {
				return nil, repository.ErrSectionNotFound
			}
			return &entity.WebsiteSection{ID: id, Title: "About"}, nil
		},
		update: func(ctx context.Context, id uuid.UUID, req dto.SectionRequest) (*entity.WebsiteSection, error) {
			if id != known {
				return nil, repository.ErrSectionNotFound
			}
			return &entity.WebsiteSection{ID: id, Title: req.Title}, nil
		},
		delete: func(ctx context.Context, id uuid.UUID) error {
			if id != known {
				return repository.ErrSectionNotFound
			}
			return nil
		},
	}
	handler := NewContentHandler(stub, "section", "sections")

	tests := map[string]struct {
		fn         echo.HandlerFunc
		method     string
		id         string
		body       string
		expectCode int
		expectBody string
	}{
		"get":            {fn: handler.Get, method: http.MethodGet, id: known.String(), expectCode: http.StatusOK},
		"get missing":    {fn: handler.Get, method: http.MethodGet, id: uuid.NewString(), expectCode: http.StatusNotFound, expectBody: "section not found"},
		"get bad id":     {fn: handler.Get, method: http.MethodGet, id: "42", expectCode: http.StatusBadRequest},
		"update":         {fn: handler.Update, method: http.MethodPut, id: known.String(), body: `{"title":"New"}`, expectCode: http.StatusOK},
		"update bad json": {fn: handler.Update, method: http.MethodPut, id: known.String(), body: `{`, expectCode: http.StatusBadRequest},
		"delete":         {fn: handler.Delete, method: http.MethodDelete, id: known.String(), expectCode: http.StatusOK, expectBody: "section deleted successfully"},
		"delete missing": {fn: handler.Delete, method: http.MethodDelete, id: uuid.NewString(), expectCode: http.StatusNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(tt.method, "/api/sections/"+tt.id, tt.body), rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)
			if err := tt.fn(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectCode, rec.Code, rec.Body.String())
			}
			if tt.expectBody != "" {
				var body map[string]string
				_ = json.Unmarshal(rec.Body.Bytes(), &body)
				if body["error"] != tt.expectBody && body["message"] != tt.expectBody {
					t.Fatalf("expected %q in body, got %v", tt.expectBody, body)
				}
			}
		})
	}
}

type testimonialsRepoStub struct{}

func (testimonialsRepoStub) List(ctx context.Context, activeOnly bool) ([]entity.Testimonial, error) {
	return []entity.Testimonial{}, nil
}

func (testimonialsRepoStub) Get(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	return nil, repository.ErrTestimonialNotFound
}

func (testimonialsRepoStub) Create(ctx context.Context, t *entity.Testimonial) error {
	t.ID = uuid.New()
	return nil
}

func (testimonialsRepoStub) Update(ctx context.Context, t *entity.Testimonial) error {
	return nil
}

func (testimonialsRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// recordingStatisticsRepo keeps the last statistic written.
type recordingStatisticsRepo struct {
	stored *entity.Statistic
}

func (r *recordingStatisticsRepo) List(ctx context.Context, activeOnly bool) ([]entity.Statistic, error) {
	return []entity.Statistic{}, nil
}

func (r *recordingStatisticsRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Statistic, error) {
	return nil, repository.ErrStatisticNotFound
}

func (r *recordingStatisticsRepo) Create(ctx context.Context, stat *entity.Statistic) error {
	stat.ID = uuid.New()
	r.stored = stat
	return nil
}

func (r *recordingStatisticsRepo) Update(ctx context.Context, stat *entity.Statistic) error {
	r.stored = stat
	return nil
}

func (r *recordingStatisticsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// recordingServicesRepo keeps the last catalogue service written.
type recordingServicesRepo struct {
	stored *entity.Service
}

func (r *recordingServicesRepo) List(ctx context.Context, activeOnly bool) ([]entity.Service, error) {
	return []entity.Service{}, nil
}

func (r *recordingServicesRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return nil, repository.ErrServiceNotFound
}

func (r *recordingServicesRepo) Create(ctx context.Context, svc *entity.Service) error {
	svc.ID = uuid.New()
	r.stored = svc
	return nil
}

func (r *recordingServicesRepo) Update(ctx context.Context, svc *entity.Service) error {
	r.stored = svc
	return nil
}

func (r *recordingServicesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestContentHandler_BlankImageURL(t *testing.T) {
	e := echo.New()
	statsRepo := &recordingStatisticsRepo{}
	servicesRepo := &recordingServicesRepo{}
	stats := NewContentHandler(service.NewStatisticsService(statsRepo), "statistic", "statistics")
	catalog := NewContentHandler(service.NewCatalogService(servicesRepo), "service", "services")

	tests := map[string]struct {
		fn         echo.HandlerFunc
		method     string
		body       string
		expectCode int
		stored     func() *string
	}{
		"create statistic": {
			fn: stats.Create, method: http.MethodPost, expectCode: http.StatusCreated,
			body:   `{"label":"Companies","value":"5+","imageUrl":""}`,
			stored: func() *string { return statsRepo.stored.ImageURL },
		},
		"update statistic after removing image": {
			fn: stats.Update, method: http.MethodPut, expectCode: http.StatusOK,
			body:   `{"label":"Companies","value":"5+","imageUrl":"   "}`,
			stored: func() *string { return statsRepo.stored.ImageURL },
		},
		"create service": {
			fn: catalog.Create, method: http.MethodPost, expectCode: http.StatusCreated,
			body:   `{"title":"Advisory","description":"d","category":"consulting","imageUrl":""}`,
			stored: func() *string { return servicesRepo.stored.ImageURL },
		},
		"update service": {
			fn: catalog.Update, method: http.MethodPut, expectCode: http.StatusOK,
			body:   `{"title":"Advisory","description":"d","category":"consulting","imageUrl":""}`,
			stored: func() *string { return servicesRepo.stored.ImageURL },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id := uuid.NewString()
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(tt.method, "/api/x/"+id, tt.body), rec)
			c.SetParamNames("id")
			c.SetParamValues(id)
			if err := tt.fn(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d: %s", tt.expectCode, rec.Code, rec.Body.String())
			}
			if got := tt.stored(); got != nil {
				t.Fatalf("expected blank image url to be stored as null, got %q", *got)
			}
		})
	}
}

func TestContentHandler_BlankRequiredText(t *testing.T) {
	e := echo.New()
	catalog := NewContentHandler(service.NewCatalogService(&recordingServicesRepo{}), "service", "services")

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/services", `{"title":"  ","description":"   ","category":"tech"}`), rec)
	_ = catalog.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Details["title"] != "required" || body.Details["description"] != "required" {
		t.Fatalf("unexpected details: %v", body.Details)
	}
}
