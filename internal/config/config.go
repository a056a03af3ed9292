// Package config loads server configuration from the environment, with an
// optional yaml file pointed to by CONFIG_PATH.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all server settings
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer `yaml:"http_server"`
	Storage    `yaml:"storage"`
	Auth       `yaml:"auth"`
}

// HTTPServer holds listener settings
type HTTPServer struct {
	Host         string        `yaml:"host" env:"HOST" env-default:""`
	Port         int           `yaml:"port" env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" env-default:"60s"`
}

// Storage selects and configures the storage backend
type Storage struct {
	Type     string `yaml:"type" env:"STORAGE_TYPE" env-default:"memory"`
	RedisURL string `yaml:"redis_url" env:"REDIS_URL" env-default:"redis://localhost:6379"`
}

// Auth holds token settings
type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:""`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

// Load reads configuration from CONFIG_PATH if set, with environment
// variables taking precedence, or from the environment alone otherwise.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
