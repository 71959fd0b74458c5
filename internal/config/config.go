// Package config loads server settings from defaults, an optional YAML file
// and TALENT_API_* environment variables, in that order.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/loader"
	"github.com/KirkDiggler/talent-api/internal/logging"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "TALENT_API_"

// Tree sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Server holds all configuration for the talent server
type Server struct {
	GRPCPort int    `yaml:"grpc_port" env:"GRPC_PORT"`
	HTTPPort int    `yaml:"http_port" env:"HTTP_PORT"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	Trees Trees `yaml:"trees" envPrefix:"TREES_"`
	Redis Redis `yaml:"redis" envPrefix:"REDIS_"`

	// RowRequirements is the shared unlock table, row to points spent.
	// In the environment it is written as "1:0,2:5,3:10".
	RowRequirements map[int]int `yaml:"row_requirements" env:"ROW_REQUIREMENTS"`
}

// Trees selects where tree definitions are read from
type Trees struct {
	Source string `yaml:"source" env:"SOURCE"`
	Path   string `yaml:"path" env:"PATH"`
}

// Redis holds connection parameters for the redis tree source
type Redis struct {
	Addr string `yaml:"addr" env:"ADDR"`
	Key  string `yaml:"key" env:"KEY"`
}

// Default returns Server config with sensible defaults
func Default() Server {
	return Server{
		GRPCPort: 50051,
		HTTPPort: 8080,
		LogLevel: "info",
		Trees: Trees{
			Source: SourceFile,
			Path:   "trees.json",
		},
		Redis: Redis{
			Addr: "localhost:6379",
			Key:  loader.DefaultRedisKey,
		},
		RowRequirements: engine.DefaultRowRequirements(),
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; an empty path
// skips the file step.
func Load(path string) (Server, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, errors.Wrapf(err, "reading config %s", path)
		default:
			// yaml.v3 merges into a non-nil map, so the file's table must replace the defaults
			cfg.RowRequirements = nil
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Default(), errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "parsing config "+path)
			}
			if cfg.RowRequirements == nil {
				cfg.RowRequirements = engine.DefaultRowRequirements()
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "parsing environment")
	}

	return cfg, cfg.Validate()
}

// Validate checks ports, the tree source and the log level
func (s Server) Validate() error {
	vb := errors.NewValidationBuilderWithCode(errors.CodeInvalidConfiguration)

	if s.GRPCPort <= 0 || s.GRPCPort > 65535 {
		vb.Fieldf("grpc_port", "must be between 1 and 65535, got %d", s.GRPCPort)
	}
	if s.HTTPPort < 0 || s.HTTPPort > 65535 {
		vb.Fieldf("http_port", "must be between 0 and 65535, got %d", s.HTTPPort)
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		vb.Fieldf("log_level", "unknown level %q", s.LogLevel)
	}

	switch s.Trees.Source {
	case SourceFile:
		if s.Trees.Path == "" {
			vb.RequiredField("trees.path")
		}
	case SourceRedis:
		if s.Redis.Addr == "" {
			vb.RequiredField("redis.addr")
		}
	default:
		vb.Fieldf("trees.source", "must be %q or %q, got %q", SourceFile, SourceRedis, s.Trees.Source)
	}

	for row, required := range s.RowRequirements {
		if required < 0 {
			vb.Fieldf("row_requirements", "row %d requirement must not be negative", row)
		}
	}

	return vb.Build()
}
