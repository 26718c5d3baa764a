package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContentService is the list/get/create/update/delete surface shared by the
// flat content resources (statistics, testimonials, services, sections).
type ContentService[T any, R any] interface {
	List(ctx context.Context, activeOnly bool) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, req R) (*T, error)
	Update(ctx context.Context, id uuid.UUID, req R) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContentHandler exposes CRUD endpoints for one flat content resource.
type ContentHandler[T any, R any] struct {
	service  ContentService[T, R]
	singular string
	plural   string
}

// NewContentHandler builds a handler. singular and plural name the resource
// in messages ("statistic", "statistics").
func NewContentHandler[T any, R any](service ContentService[T, R], singular, plural string) *ContentHandler[T, R] {
	return &ContentHandler[T, R]{service: service, singular: singular, plural: plural}
}

// List handles public GET requests and returns active records only.
func (h *ContentHandler[T, R]) List(c echo.Context) error {
	return h.list(c, true)
}

// ListAdmin returns every record, including inactive ones.
func (h *ContentHandler[T, R]) ListAdmin(c echo.Context) error {
	return h.list(c, false)
}

func (h *ContentHandler[T, R]) list(c echo.Context, activeOnly bool) error {
	records, err := h.service.List(c.Request().Context(), activeOnly)
	if err != nil {
		return Fail(c, err, "list "+h.plural)
	}
	return Success(c, http.StatusOK, records)
}

// Get returns one record by id.
func (h *ContentHandler[T, R]) Get(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	record, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return Fail(c, err, "load "+h.singular)
	}
	return Success(c, http.StatusOK, record)
}

// Create stores a new record and returns it with 201.
func (h *ContentHandler[T, R]) Create(c echo.Context) error {
	var req R
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	record, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return Fail(c, err, "create "+h.singular)
	}
	return Success(c, http.StatusCreated, record)
}

// Update replaces the scalar fields of an existing record.
func (h *ContentHandler[T, R]) Update(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var req R
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	record, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return Fail(c, err, "update "+h.singular)
	}
	return Success(c, http.StatusOK, record)
}

// Delete removes a record by id.
func (h *ContentHandler[T, R]) Delete(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return Fail(c, err, "delete "+h.singular)
	}
	return Message(c, h.singular+" deleted successfully")
}
