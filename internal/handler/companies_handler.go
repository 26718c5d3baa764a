package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/service"
)

// CompaniesHandler exposes company endpoints. Companies carry their feature
// and service lists in every response.
type CompaniesHandler struct {
	service *service.CompaniesService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(service *service.CompaniesService) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// List handles GET /api/companies requests.
func (h *CompaniesHandler) List(c echo.Context) error {
	return h.listInternal(c, true)
}

// ListAdmin handles GET /api/admin/companies requests.
func (h *CompaniesHandler) ListAdmin(c echo.Context) error {
	return h.listInternal(c, false)
}

func (h *CompaniesHandler) listInternal(c echo.Context, activeOnly bool) error {
	companies, err := h.service.ListCompanies(c.Request().Context(), activeOnly)
	if err != nil {
		return Fail(c, err, "list companies")
	}
	return Success(c, http.StatusOK, companies)
}

// Get handles GET /api/companies/:id requests.
func (h *CompaniesHandler) Get(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	company, err := h.service.GetCompany(c.Request().Context(), id)
	if err != nil {
		return Fail(c, err, "load company")
	}
	return Success(c, http.StatusOK, company)
}

// Create handles POST /api/companies requests.
func (h *CompaniesHandler) Create(c echo.Context) error {
	var req dto.CompanyRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	company, err := h.service.CreateCompany(c.Request().Context(), req)
	if err != nil {
		return Fail(c, err, "create company")
	}
	return Success(c, http.StatusCreated, company)
}

// Update handles PUT /api/companies/:id requests. Features and services are
// replaced wholesale.
func (h *CompaniesHandler) Update(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var req dto.CompanyRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	company, err := h.service.UpdateCompany(c.Request().Context(), id, req)
	if err != nil {
		return Fail(c, err, "update company")
	}
	return Success(c, http.StatusOK, company)
}

// Delete handles DELETE /api/companies/:id requests.
func (h *CompaniesHandler) Delete(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	if err := h.service.DeleteCompany(c.Request().Context(), id); err != nil {
		return Fail(c, err, "delete company")
	}
	return Message(c, "company deleted successfully")
}
