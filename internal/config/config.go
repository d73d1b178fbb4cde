package config

import (
	"errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"strings"
	"time"
)

const (
	// StoreDriverMemory keeps the client store in memory (hashicorp/go-memdb)
	StoreDriverMemory = "memory"

	// StoreDriverPostgres keeps the client store in a PostgreSQL database
	StoreDriverPostgres = "postgres"
)

// ErrWildcardOrigin is returned when a production configuration allows every CORS origin
var ErrWildcardOrigin = errors.New("CORTEX_ALLOWED_ORIGIN must name the dashboard origin in production")

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"dev"`

	ListenAddress string `split_words:"true" default:":8080"`
	AllowedOrigin string `split_words:"true" default:"http://localhost:3000"`
	SecureCookies bool   `split_words:"true" default:"false"`

	BackendURL string `split_words:"true" required:"true"`

	StoreDriver          string        `split_words:"true" default:"memory"`
	PostgresDSN          string        `split_words:"true"`
	StoreEntryLifetime   time.Duration `split_words:"true" default:"720h"`
	StoreCleanupInterval time.Duration `split_words:"true" default:"10m"`

	CallbackSteadyRoute string `split_words:"true" default:"/connections"`
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return strings.EqualFold(config.Environment, "prod") || strings.EqualFold(config.Environment, "production")
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("cortex", config); err != nil {
		return nil, err
	}

	// Browsers send the client cookie along credentialed CORS requests, so production needs a concrete origin
	if config.IsEnvProduction() && strings.TrimSpace(config.AllowedOrigin) == "*" {
		return nil, ErrWildcardOrigin
	}
	return config, nil
}
