package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/middleware"
	"github.com/gsccapital/website/api/internal/service"
)

// UserAdminHandler exposes administrative user management endpoints.
type UserAdminHandler struct {
	users *service.UserService
}

// NewUserAdminHandler constructs a handler instance.
func NewUserAdminHandler(users *service.UserService) *UserAdminHandler {
	return &UserAdminHandler{users: users}
}

// List returns all users.
func (h *UserAdminHandler) List(c echo.Context) error {
	records, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return Fail(c, err, "list users")
	}
	return Success(c, http.StatusOK, records)
}

// Create provisions a new user.
func (h *UserAdminHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	user, err := h.users.CreateUser(c.Request().Context(), req)
	if err != nil {
		return Fail(c, err, "create user")
	}
	return Success(c, http.StatusCreated, user)
}

// Update modifies an existing user.
func (h *UserAdminHandler) Update(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	var req dto.UpdateUserRequest
	if ok, err := bindJSON(c, &req); !ok {
		return err
	}

	user, err := h.users.UpdateUser(c.Request().Context(), id, req)
	if err != nil {
		return Fail(c, err, "update user")
	}
	return Success(c, http.StatusOK, user)
}

// Delete removes a user. Administrators cannot delete themselves.
func (h *UserAdminHandler) Delete(c echo.Context) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}
	if err := h.users.DeleteUser(c.Request().Context(), middleware.UserIDFromContext(c), id); err != nil {
		if errors.Is(err, service.ErrCannotDeleteSelf) {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Fail(c, err, "delete user")
	}
	return Message(c, "user deleted successfully")
}
