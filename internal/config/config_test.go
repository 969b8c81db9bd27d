package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/config"
	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/export"
	"github.com/KirkDiggler/cardgen/internal/repositories/artifacts"
)

type ConfigTestSuite struct {
	suite.Suite
}

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func (s *ConfigTestSuite) TestFromEnv_Defaults() {
	cfg, err := config.FromEnv(env(nil))
	s.Require().NoError(err)

	s.Equal(config.DefaultHTTPAddr, cfg.HTTPAddr)
	s.Equal(0, cfg.GRPCPort)
	s.Equal(export.BackendAuto, cfg.ExportBackend)
	s.Equal(export.DefaultTimeout, cfg.ExportTimeout)
	s.Equal(artifacts.DefaultTTL, cfg.ArtifactTTL)
	s.Equal(slog.LevelInfo, cfg.LogLevel)
	s.Empty(cfg.RedisURL)
}

func (s *ConfigTestSuite) TestFromEnv_Overrides() {
	cfg, err := config.FromEnv(env(map[string]string{
		config.EnvPort:          "9000",
		config.EnvGRPCPort:      "50051",
		config.EnvRedisURL:      "redis://localhost:6379/0",
		config.EnvExportBackend: "RASTER",
		config.EnvChromePath:    "/usr/bin/chromium",
		config.EnvExportTimeout: "45s",
		config.EnvArtifactTTL:   "1h",
		config.EnvLogLevel:      "debug",
	}))
	s.Require().NoError(err)

	s.Equal(":9000", cfg.HTTPAddr)
	s.Equal(50051, cfg.GRPCPort)
	s.Equal("redis://localhost:6379/0", cfg.RedisURL)
	s.Equal(export.BackendRaster, cfg.ExportBackend)
	s.Equal(45*time.Second, cfg.ExportTimeout)
	s.Equal(time.Hour, cfg.ArtifactTTL)
	s.Equal(slog.LevelDebug, cfg.LogLevel)

	exportCfg := cfg.ExportConfig()
	s.Equal("/usr/bin/chromium", exportCfg.ChromePath)
	s.Equal(45*time.Second, exportCfg.Timeout)
}

func (s *ConfigTestSuite) TestFromEnv_HTTPAddrWinsOverPort() {
	cfg, err := config.FromEnv(env(map[string]string{
		config.EnvPort:     "9000",
		config.EnvHTTPAddr: "127.0.0.1:8081",
	}))
	s.Require().NoError(err)
	s.Equal("127.0.0.1:8081", cfg.HTTPAddr)
}

func (s *ConfigTestSuite) TestFromEnv_Invalid() {
	testCases := []struct {
		name string
		vars map[string]string
	}{
		{name: "grpc port not a number", vars: map[string]string{config.EnvGRPCPort: "grpc"}},
		{name: "grpc port out of range", vars: map[string]string{config.EnvGRPCPort: "70000"}},
		{name: "unknown backend", vars: map[string]string{config.EnvExportBackend: "wkhtmltopdf"}},
		{name: "bad timeout", vars: map[string]string{config.EnvExportTimeout: "soon"}},
		{name: "zero ttl", vars: map[string]string{config.EnvArtifactTTL: "0s"}},
		{name: "bad log level", vars: map[string]string{config.EnvLogLevel: "chatty"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.FromEnv(env(tc.vars))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ConfigTestSuite) TestLoad_EnvFile() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("CARDGEN_ARTIFACT_TTL=2m\n"), 0o600))

	s.T().Setenv(config.EnvArtifactTTL, "")
	s.Require().NoError(os.Unsetenv(config.EnvArtifactTTL))

	cfg, err := config.Load(path, filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)
	s.Equal(2*time.Minute, cfg.ArtifactTTL)
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
