package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID carries the request identifier in both directions.
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// RequestID assigns every request an identifier, reusing the caller's
// X-Request-ID when present. The id is echoed in the response header and
// stored on both the echo context and the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := req.Header.Get(HeaderRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set(ContextKeyRequestID, rid)
			c.SetRequest(req.WithContext(WithRequestID(req.Context(), rid)))
			c.Response().Header().Set(HeaderRequestID, rid)

			return next(c)
		}
	}
}

// WithRequestID returns a copy of ctx carrying the request identifier.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestIDFromCtx extracts the request identifier from a request context.
func RequestIDFromCtx(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// RequestIDFromContext extracts the request identifier if available.
func RequestIDFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyRequestID).(string); ok {
		return val
	}
	return RequestIDFromCtx(c.Request().Context())
}
