package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/middleware"
	"github.com/gsccapital/website/api/internal/service"
)

// AuthHandler exposes authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Fail(c, err, "authenticate")
	}

	return Success(c, http.StatusOK, resp)
}

// Me handles GET /api/auth/me and returns the account behind the token.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authService.Me(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return Fail(c, err, "load current user")
	}
	return Success(c, http.StatusOK, user)
}
