package commands

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gsccapital/website/api/internal/auth"
	"github.com/gsccapital/website/api/internal/repository"
	"github.com/gsccapital/website/api/internal/service"
)

// services holds every business service over one pool.
type services struct {
	jwt          *auth.JWTManager
	auth         *service.AuthService
	users        *service.UserService
	companies    *service.CompaniesService
	statistics   *service.StatisticsService
	testimonials *service.TestimonialsService
	catalog      *service.CatalogService
	sections     *service.SectionsService
	contact      *service.ContactService
}

func newServices(pool *pgxpool.Pool) *services {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	usersRepo := repository.NewPGXUsersRepository(pool)

	var normalizerOpts []service.ContactNormalizerOption
	if cfg.ContactVerifyMX {
		normalizerOpts = append(normalizerOpts, service.WithMXLookup(service.SystemDNSResolver{}))
	}

	return &services{
		jwt:          jwtManager,
		auth:         service.NewAuthService(usersRepo, jwtManager),
		users:        service.NewUserService(usersRepo),
		companies:    service.NewCompaniesService(repository.NewPGXCompaniesRepository(pool)),
		statistics:   service.NewStatisticsService(repository.NewPGXStatisticsRepository(pool)),
		testimonials: service.NewTestimonialsService(repository.NewPGXTestimonialsRepository(pool)),
		catalog:      service.NewCatalogService(repository.NewPGXServicesRepository(pool)),
		sections:     service.NewSectionsService(repository.NewPGXSectionsRepository(pool)),
		contact: service.NewContactService(
			repository.NewPGXContactMessagesRepository(pool),
			service.NewContactNormalizer(cfg.ContactPhoneRegion, normalizerOpts...),
		),
	}
}

func (s *services) seeder() *service.Seeder {
	return &service.Seeder{
		Companies:    s.companies,
		Statistics:   s.statistics,
		Testimonials: s.testimonials,
		Catalog:      s.catalog,
		Auth:         s.auth,
	}
}
