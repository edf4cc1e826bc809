package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from .env, environment and flags.
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS" envDefault:":5000"`
	DatabaseURI string `env:"DATABASE_URI"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret     string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	UserTokenTTL  time.Duration `env:"USER_TOKEN_TTL" envDefault:"168h"`
	AdminTokenTTL time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"6h"`
	AdminEmail    string        `env:"ADMIN_EMAIL"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
	StudioName   string `env:"STUDIO_NAME" envDefault:"Atelier"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	PublicRateLimit float64       `env:"PUBLIC_RATE_LIMIT" envDefault:"1"`
	PublicRateBurst int           `env:"PUBLIC_RATE_BURST" envDefault:"5"`
	MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
}

// DefaultJWTSecret is the signing secret used when none is configured; it is only fit for local runs.
const DefaultJWTSecret = "change-me-in-production"

const (
	defaultRunAddress      = ":5000"
	defaultUserTokenTTL    = 7 * 24 * time.Hour
	defaultAdminTokenTTL   = 6 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultSMTPPort        = 587
	defaultRateBurst       = 5
	defaultMaxUploadBytes  = 10 << 20
	defaultEnvFile         = ".env"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	envFile := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		envFile = v
	}
	return load(os.Args[1:], envFile)
}

func load(args []string, envFile string) (*Config, error) {
	if envFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("atelier", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		userTTLStr         = cfg.UserTokenTTL.String()
		adminTTLStr        = cfg.AdminTokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&userTTLStr, "user-token-ttl", userTTLStr, "Lifetime of user tokens")
	fs.StringVar(&adminTTLStr, "admin-token-ttl", adminTTLStr, "Lifetime of admin tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.SMTPHost, "smtp-host", cfg.SMTPHost, "SMTP relay host")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", cfg.SMTPPort, "SMTP relay port")
	fs.Float64Var(&cfg.PublicRateLimit, "rate-limit", cfg.PublicRateLimit, "Requests per second allowed on public write endpoints")
	fs.IntVar(&cfg.PublicRateBurst, "rate-burst", cfg.PublicRateBurst, "Burst size for public write endpoints")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.UserTokenTTL, err = time.ParseDuration(userTTLStr); err != nil {
		return nil, fmt.Errorf("invalid user token ttl: %w", err)
	}

	if cfg.AdminTokenTTL, err = time.ParseDuration(adminTTLStr); err != nil {
		return nil, fmt.Errorf("invalid admin token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := os.LookupEnv("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.normalize()

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	return cfg, nil
}

func (c *Config) normalize() {
	if c.RunAddress == "" {
		c.RunAddress = defaultRunAddress
	}
	if c.UserTokenTTL <= 0 {
		c.UserTokenTTL = defaultUserTokenTTL
	}
	if c.AdminTokenTTL <= 0 {
		c.AdminTokenTTL = defaultAdminTokenTTL
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.SMTPPort <= 0 {
		c.SMTPPort = defaultSMTPPort
	}
	if c.PublicRateBurst <= 0 {
		c.PublicRateBurst = defaultRateBurst
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = defaultMaxUploadBytes
	}
	if c.MailFrom == "" {
		c.MailFrom = c.SMTPUsername
	}
}

// UsesDefaultJWTSecret reports whether tokens are signed with DefaultJWTSecret.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// MailEnabled reports whether outgoing SMTP is configured.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.MailFrom != ""
}

// CloudinaryEnabled reports whether asset uploads can reach Cloudinary.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// AdminConfigured reports whether the admin login path can be used.
func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}
