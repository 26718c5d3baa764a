package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gsccapital/website/api/internal/monitoring"
)

// Metrics records request counts and latency by route pattern.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}

			monitoring.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			monitoring.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
