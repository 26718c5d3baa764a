package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/gsccapital/website/api/internal/database"
	"github.com/gsccapital/website/api/internal/dto"
	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/handler"
	"github.com/gsccapital/website/api/internal/media"
	middlewarepkg "github.com/gsccapital/website/api/internal/middleware"
	"github.com/gsccapital/website/api/internal/router"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(pool); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	svc := newServices(pool)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		created, err := svc.auth.EnsureAdmin(ctx, cfg.AdminEmail, database.DefaultSeed().AdminName, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		if created {
			slog.Info("admin account bootstrapped", "email", cfg.AdminEmail)
		}
	}

	uploader, err := media.New(cfg.Media)
	if err != nil {
		return fmt.Errorf("configure media host: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Metrics())
	e.Use(middlewarepkg.Logging(slog.Default()))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.CORSAllowedOrigins}))

	router.Register(e, cfg, svc.jwt, router.Handlers{
		Health:       handler.NewHealthHandler(pool),
		Auth:         handler.NewAuthHandler(svc.auth),
		Users:        handler.NewUserAdminHandler(svc.users),
		Companies:    handler.NewCompaniesHandler(svc.companies),
		Statistics:   handler.NewContentHandler[entity.Statistic, dto.StatisticRequest](svc.statistics, "statistic", "statistics"),
		Testimonials: handler.NewContentHandler[entity.Testimonial, dto.TestimonialRequest](svc.testimonials, "testimonial", "testimonials"),
		Services:     handler.NewContentHandler[entity.Service, dto.ServiceRequest](svc.catalog, "service", "services"),
		Sections:     handler.NewContentHandler[entity.WebsiteSection, dto.SectionRequest](svc.sections, "section", "sections"),
		Contact:      handler.NewContactHandler(svc.contact),
		Upload:       handler.NewUploadHandler(uploader),
	})

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("listening", "port", cfg.Port, "env", cfg.Environment, "media", cfg.Media.Backend)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
		return err
	}
	return nil
}
