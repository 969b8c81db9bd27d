// Package config loads cardgen settings from .env files and the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/repositories/artifacts"
)

// Environment variables
const (
	EnvPort          = "PORT"
	EnvHTTPAddr      = "CARDGEN_HTTP_ADDR"
	EnvGRPCPort      = "CARDGEN_GRPC_PORT"
	EnvRedisURL      = "REDIS_URL"
	EnvExportBackend = "CARDGEN_EXPORT_BACKEND"
	EnvChromePath    = "CHROME_PATH"
	EnvExportTimeout = "CARDGEN_EXPORT_TIMEOUT"
	EnvArtifactTTL   = "CARDGEN_ARTIFACT_TTL"
	EnvLogLevel      = "CARDGEN_LOG_LEVEL"
)

// DefaultHTTPAddr is used when neither CARDGEN_HTTP_ADDR nor PORT is set
const DefaultHTTPAddr = ":8080"

// Config holds process settings
type Config struct {
	HTTPAddr      string
	GRPCPort      int
	RedisURL      string
	ExportBackend string
	ChromePath    string
	ExportTimeout time.Duration
	ArtifactTTL   time.Duration
	LogLevel      slog.Level
}

// Load reads the given .env files, skipping any that do not exist, then
// builds the config from the environment. Variables already set in the
// environment win over .env values.
func Load(files ...string) (*Config, error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, errors.Wrapf(err, "failed to load env files %s", strings.Join(existing, ","))
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	vb := errors.NewValidationBuilder()

	cfg := &Config{
		HTTPAddr:      DefaultHTTPAddr,
		RedisURL:      getenv(EnvRedisURL),
		ExportBackend: export.BackendAuto,
		ChromePath:    getenv(EnvChromePath),
		ExportTimeout: export.DefaultTimeout,
		ArtifactTTL:   artifacts.DefaultTTL,
		LogLevel:      slog.LevelInfo,
	}

	if port := getenv(EnvPort); port != "" {
		cfg.HTTPAddr = ":" + port
	}
	if addr := getenv(EnvHTTPAddr); addr != "" {
		cfg.HTTPAddr = addr
	}
	if v := getenv(EnvExportBackend); v != "" {
		cfg.ExportBackend = strings.ToLower(v)
	}

	if v := getenv(EnvGRPCPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			vb.InvalidField(EnvGRPCPort, "must be a number")
		}
		cfg.GRPCPort = port
	}
	if v := getenv(EnvExportTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			vb.InvalidField(EnvExportTimeout, "must be a duration")
		}
		cfg.ExportTimeout = d
	}
	if v := getenv(EnvArtifactTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			vb.InvalidField(EnvArtifactTTL, "must be a duration")
		}
		cfg.ArtifactTTL = d
	}
	if v := getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			vb.InvalidField(EnvLogLevel, "must be debug, info, warn or error")
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	errors.ValidateRange("GRPCPort", c.GRPCPort, 0, 65535, vb)
	errors.ValidateEnum("ExportBackend", c.ExportBackend,
		[]string{export.BackendAuto, export.BackendChrome, export.BackendRaster}, vb)
	if c.ExportTimeout <= 0 {
		vb.InvalidField("ExportTimeout", "must be positive")
	}
	if c.ArtifactTTL <= 0 {
		vb.InvalidField("ArtifactTTL", "must be positive")
	}

	return vb.Build()
}

// ExportConfig returns the exporter settings
func (c *Config) ExportConfig() *export.Config {
	return &export.Config{
		Backend:    c.ExportBackend,
		ChromePath: c.ChromePath,
		Timeout:    c.ExportTimeout,
	}
}
