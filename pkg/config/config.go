package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, read from the environment with an
// optional .env overlay for local development.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	CatalogBaseURL   string        `env:"CATALOG_BASE_URL" envDefault:"https://fakestoreapi.com"`
	CatalogTimeout   time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`
	CatalogCacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"256"`

	StoragePath string `env:"STORAGE_PATH" envDefault:"sleekshop.db"`

	CheckoutDelay time.Duration `env:"CHECKOUT_DELAY" envDefault:"2s"`
}

// Load reads configuration from the environment. A missing .env file is fine.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
