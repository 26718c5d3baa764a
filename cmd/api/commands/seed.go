package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gsccapital/website/api/internal/database"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load starter content and bootstrap the admin account",
		Long:  `Loads the default companies, statistics, testimonials and services when the database holds no companies yet. The admin account is created from ADMIN_EMAIL and ADMIN_PASSWORD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if cfg.AutoMigrate {
				if err := database.Migrate(pool); err != nil {
					return err
				}
			}

			result, err := newServices(pool).seeder().Seed(cmd.Context(), database.DefaultSeed(), cfg.AdminEmail, cfg.AdminPassword)
			if err != nil {
				return err
			}
			slog.Info("seed finished",
				"companies", result.Companies,
				"statistics", result.Statistics,
				"testimonials", result.Testimonials,
				"services", result.Services,
				"admin_created", result.AdminCreated,
			)
			return nil
		},
	}
}
