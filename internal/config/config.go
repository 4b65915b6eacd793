// Package config assembles the runtime configuration.
//
// The database name, port and user come from the command line. Everything
// else has a default matching a local PostgreSQL install and can be
// overridden through MECHANICSHOP_ environment variables (optionally from a
// .env file). A double underscore separates nesting levels, so
// MECHANICSHOP_DATABASE__HOST sets database.host.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "MECHANICSHOP_"

type Config struct {
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     string `koanf:"port" validate:"required,numeric"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
}

type LoggingConfig struct {
	Level    string `koanf:"level" validate:"required,oneof=trace debug info warn error disabled"`
	Format   string `koanf:"format" validate:"required,oneof=console json"`
	TraceSQL bool   `koanf:"trace_sql"`
}

// Args are the three positional command line arguments.
type Args struct {
	DBName string
	Port   string
	User   string
}

// Load reads the environment, applies the positional arguments on top and
// validates the result.
func Load(args Args) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	cfg.Database.Name = args.DBName
	cfg.Database.Port = args.Port
	cfg.Database.User = args.User

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}
