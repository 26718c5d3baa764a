package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/gsccapital/website/api/internal/config"
	"github.com/gsccapital/website/api/internal/monitoring"
)

// idleLimiterTTL is how long an unused client bucket is kept.
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	clients  map[string]*clientLimiter
	now      func() time.Time
	lastScan time.Time
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastScan) > idleLimiterTTL {
		for key, cl := range l.clients {
			if now.Sub(cl.lastSeen) > idleLimiterTTL {
				delete(l.clients, key)
			}
		}
		l.lastScan = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// RateLimiter applies a token bucket per client IP. name labels the
// rejection metric and the error message. A zero config disables limiting.
func RateLimiter(name string, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	l := &ipLimiter{
		limit:   rate.Every(perRequest),
		burst:   cfg.Requests,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP()) {
				monitoring.RateLimitedAmount.WithLabelValues(name).Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": name + " rate limit exceeded"})
			}
			return next(c)
		}
	}
}
