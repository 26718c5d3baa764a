package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/middleware"
	"github.com/gsccapital/website/api/internal/repository"
	"github.com/gsccapital/website/api/internal/service"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// Success sends data as JSON with the given status, defaulting to 200.
func Success(c echo.Context, status int, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, data)
}

// Message sends a {"message": ...} confirmation.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// Error sends an error body, defaulting to 500.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: message})
}

// ValidationFailed sends a 400 with per-field rule details.
func ValidationFailed(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
}

// bindJSON decodes the request body into dst. Malformed bodies are answered
// with a validation failure and ok is false.
func bindJSON(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, ValidationFailed(c, map[string]string{"body": "json"})
	}
	return true, nil
}

// parseID reads the :id path parameter. A malformed id is answered with 400
// and ok is false.
func parseID(c echo.Context) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, Error(c, http.StatusBadRequest, "invalid id")
	}
	return id, true, nil
}

// Fail maps a service or repository error to a status code. Unexpected
// errors are logged and hidden behind action.
func Fail(c echo.Context, err error, action string) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return ValidationFailed(c, validationErr.Details)
	case errors.Is(err, repository.ErrNotFound):
		return Error(c, http.StatusNotFound, sentinelMessage(err, repository.ErrNotFound))
	case errors.Is(err, repository.ErrConflict):
		return Error(c, http.StatusConflict, sentinelMessage(err, repository.ErrConflict))
	}

	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("request_id", middleware.RequestIDFromContext(c)),
		slog.String("action", action),
		slog.String("path", c.Path()),
		slog.Any("err", err),
	)
	return Error(c, http.StatusInternalServerError, "failed to "+action)
}

// publicErrors are the repository errors whose text is safe to show clients.
var publicErrors = []error{
	repository.ErrCompanyNotFound,
	repository.ErrStatisticNotFound,
	repository.ErrTestimonialNotFound,
	repository.ErrServiceNotFound,
	repository.ErrSectionNotFound,
	repository.ErrContactMessageNotFound,
	repository.ErrUserNotFound,
	repository.ErrSlugTaken,
	repository.ErrEmailDuplicate,
}

// sentinelMessage returns the text of the most specific known error in err's
// chain, such as "company not found", dropping any wrapping context.
func sentinelMessage(err, base error) string {
	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return base.Error()
}
