package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces that the authenticated request carries one of roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value, ok := c.Get(ContextKeyUserRole).(string)
			if !ok || value == "" {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "missing role"})
			}
			if !slices.Contains(roles, value) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
			}
			return next(c)
		}
	}
}
