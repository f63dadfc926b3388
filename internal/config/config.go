package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Port              string `envconfig:"PORT" default:"5000"`
	Environment       string `envconfig:"ENV" default:"development"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"debug"`
	RequestTimeoutSec int    `envconfig:"REQUEST_TIMEOUT_SEC" default:"10"`

	// Storage
	StoreDriver        string `envconfig:"STORE_DRIVER" default:"mongo"`
	MongoURI           string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	MongoDatabase      string `envconfig:"MONGODB_DATABASE" default:"quizhub"`
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING"`
	SeedDefaults       bool   `envconfig:"SEED_DEFAULTS" default:"true"`

	// Single shared admin credential. ADMIN_PASSWORD_SECRET, when set, is a
	// Secret Manager version name that replaces ADMIN_PASSWORD at startup.
	AdminUsername       string `envconfig:"ADMIN_USERNAME" default:"notUsername"`
	AdminPassword       string `envconfig:"ADMIN_PASSWORD" default:"notPassword"`
	AdminPasswordSecret string `envconfig:"ADMIN_PASSWORD_SECRET"`

	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks combinations envconfig cannot express with struct tags.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=%s", StoreDriverMongo)
		}
	case StoreDriverPostgres:
		if c.DBConnectionString == "" {
			return fmt.Errorf("DB_CONNECTION_STRING is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.RequestTimeoutSec <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SEC must be positive, got %d", c.RequestTimeoutSec)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
