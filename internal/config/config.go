package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// devJWTSecret is the local-development signing key; deployed environments
// must override it.
const devJWTSecret = "dev-secret"

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// MediaConfig selects and configures the external image host.
type MediaConfig struct {
	Backend      string        `env:"MEDIA_BACKEND" envDefault:"cloudinary"`
	Folder       string        `env:"MEDIA_FOLDER" envDefault:"gsccapital"`
	Timeout      time.Duration `env:"MEDIA_TIMEOUT" envDefault:"30s"`
	CloudName    string        `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey       string        `env:"CLOUDINARY_API_KEY"`
	APISecret    string        `env:"CLOUDINARY_API_SECRET"`
	UploadPreset string        `env:"CLOUDINARY_UPLOAD_PRESET" envDefault:"upload"`
	AWSRegion    string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKey string        `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	S3Bucket     string        `env:"S3_BUCKET_NAME"`
}

// Signed reports whether Cloudinary API credentials are available.
func (m MediaConfig) Signed() bool {
	return m.APIKey != "" && m.APISecret != ""
}

// Config aggregates application-wide configuration values.
type Config struct {
	Environment           string        `env:"APP_ENV" envDefault:"development"`
	DatabaseURL           string        `env:"DATABASE_URL"`
	DatabaseURLProduction string        `env:"DATABASE_URL_PRODUCTION"`
	PostgresAddonURI      string        `env:"POSTGRESQL_ADDON_URI"`
	AutoMigrate           bool          `env:"AUTO_MIGRATE" envDefault:"true"`
	JWTSecret             string        `env:"JWT_SECRET" envDefault:"dev-secret"`
	TokenTTL              time.Duration `env:"JWT_TTL" envDefault:"24h"`
	Port                  string        `env:"PORT" envDefault:"8080"`
	LogLevel              string        `env:"LOG_LEVEL" envDefault:"info"`
	AdminEmail            string        `env:"ADMIN_EMAIL"`
	AdminPassword         string        `env:"ADMIN_PASSWORD"`
	ContactPhoneRegion    string        `env:"CONTACT_PHONE_REGION" envDefault:"US"`
	ContactVerifyMX       bool          `env:"CONTACT_VERIFY_MX" envDefault:"false"`
	CORSAllowedOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitContactRaw   string        `env:"RATE_LIMIT_CONTACT" envDefault:"5/min"`
	RateLimitLoginRaw     string        `env:"RATE_LIMIT_LOGIN" envDefault:"10/min"`
	Media                 MediaConfig

	RateLimitContact RateLimitConfig
	RateLimitLogin   RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.DatabaseURL = resolveDatabaseURL(cfg)

	if cfg.IsDeployed() {
		if secret := strings.TrimSpace(cfg.JWTSecret); secret == "" || secret == devJWTSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set to a non-default value when APP_ENV=%s", cfg.Environment)
		}
	}

	rl, err := parseRateLimit(cfg.RateLimitContactRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT value: %w", err)
	}
	cfg.RateLimitContact = rl

	rl, err = parseRateLimit(cfg.RateLimitLoginRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LOGIN value: %w", err)
	}
	cfg.RateLimitLogin = rl

	cfg.Media.Backend = strings.ToLower(strings.TrimSpace(cfg.Media.Backend))
	switch cfg.Media.Backend {
	case "cloudinary", "s3":
	default:
		return nil, fmt.Errorf("unsupported MEDIA_BACKEND %q", cfg.Media.Backend)
	}

	return cfg, nil
}

// IsDeployed reports whether the process runs in a hosted environment.
func (c *Config) IsDeployed() bool {
	switch strings.ToLower(c.Environment) {
	case "production", "staging":
		return true
	}
	return false
}

// resolveDatabaseURL applies the hosted override chain: addon URI, then the
// explicit production URL, then the plain DATABASE_URL.
func resolveDatabaseURL(cfg *Config) string {
	if !cfg.IsDeployed() {
		return cfg.DatabaseURL
	}
	for _, candidate := range []string{cfg.PostgresAddonURI, cfg.DatabaseURLProduction, cfg.DatabaseURL} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}
