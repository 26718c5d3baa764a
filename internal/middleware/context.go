package middleware

import "github.com/labstack/echo/v4"

// Context keys used to store authentication metadata.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// UserIDFromContext returns the authenticated subject, if any.
func UserIDFromContext(c echo.Context) string {
	id, _ := c.Get(ContextKeyUserID).(string)
	return id
}
