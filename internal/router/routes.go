package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gsccapital/website/api/internal/auth"
	"github.com/gsccapital/website/api/internal/config"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/handler"
	middlewarepkg "github.com/gsccapital/website/api/internal/middleware"
)

// uploadBodyLimit sits above media.MaxUploadSize so oversized files reach
// validation and get a 400 rather than a 413.
const uploadBodyLimit = "12M"

// resourceHandler is the endpoint set shared by every content resource.
type resourceHandler interface {
	List(c echo.Context) error
	ListAdmin(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Users        *handler.UserAdminHandler
	Companies    *handler.CompaniesHandler
	Statistics   resourceHandler
	Testimonials resourceHandler
	Services     resourceHandler
	Sections     resourceHandler
	Contact      *handler.ContactHandler
	Upload       *handler.UploadHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", handlers.Health.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/auth/login", handlers.Auth.Login, middlewarepkg.RateLimiter("login", cfg.RateLimitLogin))
	api.POST("/contact", handlers.Contact.Submit, middlewarepkg.RateLimiter("contact", cfg.RateLimitContact))

	requireAuth := middlewarepkg.JWT(jwtManager)
	staff := middlewarepkg.RequireRole(entity.RoleAdmin, entity.RoleEditor)

	api.GET("/auth/me", handlers.Auth.Me, requireAuth)

	registerResource(api, "/companies", handlers.Companies, requireAuth, staff)
	registerResource(api, "/statistics", handlers.Statistics, requireAuth, staff)
	registerResource(api, "/testimonials", handlers.Testimonials, requireAuth, staff)
	registerResource(api, "/services", handlers.Services, requireAuth, staff)
	registerResource(api, "/sections", handlers.Sections, requireAuth, staff)

	inbox := api.Group("/contact", requireAuth, staff)
	inbox.GET("", handlers.Contact.List)
	inbox.GET("/:id", handlers.Contact.Get)
	inbox.PUT("/:id", handlers.Contact.MarkRead)
	inbox.DELETE("/:id", handlers.Contact.Delete)

	api.POST("/upload", handlers.Upload.Upload, echoMiddleware.BodyLimit(uploadBodyLimit), requireAuth, staff)

	users := api.Group("/admin/users", requireAuth, middlewarepkg.RequireRole(entity.RoleAdmin))
	users.GET("", handlers.Users.List)
	users.POST("", handlers.Users.Create)
	users.PATCH("/:id", handlers.Users.Update)
	users.DELETE("/:id", handlers.Users.Delete)
}

// registerResource mounts public reads at path, staff writes at path and the
// unfiltered staff list at /admin<path>.
func registerResource(api *echo.Group, path string, h resourceHandler, protect ...echo.MiddlewareFunc) {
	api.GET(path, h.List)
	api.GET(path+"/:id", h.Get)
	api.POST(path, h.Create, protect...)
	api.PUT(path+"/:id", h.Update, protect...)
	api.DELETE(path+"/:id", h.Delete, protect...)
	api.GET("/admin"+path, h.ListAdmin, protect...)
}
