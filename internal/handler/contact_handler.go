package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/monitoring"
	"github.com/gsccapital/website/api/internal/service"
)

// ContactHandler accepts public contact form submissions and serves the
// admin inbox.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	msg, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		return Fail(c, err, "submit contact form")
	}
	monitoring.ContactSubmissionsAmount.Inc()
	return Success(c, http.StatusCreated, dto.ContactAccepted{
		Message: "Thank you for your message. We'll get back to you soon!",
		ID:      msg.ID,
	})
}

// List handles GET /api/contact, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		return Fail(c, err, "list contact messages")
	}
	return Success(c, http.StatusOK, messages)
}

// Get handles GET /api/contact/:id.
func (h *ContactHandler) Get(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	msg, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return Fail(c, err, "load contact message")
	}
	return Success(c, http.StatusOK, msg)
}

// MarkRead handles PUT /api/contact/:id. Only isRead is accepted.
func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var req dto.ContactReadRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}
	msg, err := h.service.MarkRead(c.Request().Context(), id, req)
	if err != nil {
		return Fail(c, err, "update contact message")
	}
	return Success(c, http.StatusOK, msg)
}

// Delete handles DELETE /api/contact/:id.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return Fail(c, err, "delete contact message")
	}
	return Message(c, "message deleted successfully")
}
