// Package config reads the server configuration from the environment
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds every setting the server reads from the environment
type Config struct {
	HTTPPort int `env:"HTTP_PORT" envDefault:"8001"`
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	// RedisURL empty runs an embedded development redis
	RedisURL string `env:"REDIS_URL"`
	// BestiaryPath empty uses the embedded tables
	BestiaryPath string `env:"BESTIARY_PATH"`

	PublicBaseURL      string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	RateLimit          int64         `env:"RATE_LIMIT" envDefault:"120"`
	ShareDefaultTTL    time.Duration `env:"SHARE_DEFAULT_TTL" envDefault:"168h"`
	MaxGenerateCount   int           `env:"MAX_GENERATE_COUNT" envDefault:"20"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// OTELEndpoint empty disables tracing
	OTELEndpoint string `env:"OTEL_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"monster-generator"`
}

// Load reads .env files, if present, and then the process environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("HTTP_PORT", c.HTTPPort, 1, 65535, vb)
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	if c.HTTPPort == c.GRPCPort {
		vb.InvalidField("GRPC_PORT", "must differ from HTTP_PORT")
	}
	errors.ValidateRequired("PUBLIC_BASE_URL", c.PublicBaseURL, vb)
	if len(c.CORSAllowedOrigins) == 0 {
		vb.RequiredField("CORS_ALLOWED_ORIGINS")
	}
	if c.RateLimit < 1 {
		vb.Field("RATE_LIMIT", "must be at least 1")
	}
	if c.ShareDefaultTTL <= 0 {
		vb.Field("SHARE_DEFAULT_TTL", "must be positive")
	}
	errors.ValidatePositive("MAX_GENERATE_COUNT", c.MaxGenerateCount, vb)
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{LogFormatText, LogFormatJSON}, vb)
	errors.ValidateRequired("SERVICE_NAME", c.ServiceName, vb)

	return vb.Build()
}

// Level returns the slog level named by LogLevel
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger described by LogLevel and LogFormat
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if strings.EqualFold(c.LogFormat, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
