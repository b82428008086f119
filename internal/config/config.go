// Package config resolves dbview's runtime settings from the process
// environment. Every database setting has a literal fallback so the tool
// can be pointed at a local development instance with no setup at all.
package config

import (
	"fmt"
	"net"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config is the resolved connection record. Defaults apply only when the
// variable is unset; a variable set to the empty string is kept as-is,
// matching shell ${VAR-default} substitution.
//
// Port is carried as an opaque string: the tool performs no validation and
// hands the value straight to the database client.
type Config struct {
	Host     string `env:"DB_HOST" default:"127.0.0.1"`
	Port     string `env:"DB_PORT" default:"3306"`
	User     string `env:"DB_USER" default:"appuser"`
	Password string `env:"DB_PASSWORD" default:"App@12345678"`
	Database string `env:"DB_NAME" default:"appdb"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"console"`
}

// Load reads an optional .env file from the working directory, then resolves
// the configuration from the environment. A missing .env file is not an
// error. Load never fails on the database settings themselves — each one has
// a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return &cfg, nil
}

// Addr returns the host:port pair for the configured server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
