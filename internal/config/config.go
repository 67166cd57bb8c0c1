package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"interview-prep-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Data  Data
	Redis Redis
}

// Data locates the static JSON datasets on disk.
type Data struct {
	Dir          string `env:"DATA_DIR" envDefault:"data"`
	SolutionsDir string `env:"SOLUTIONS_DIR" envDefault:"data/solutions"`
	Watch        bool   `env:"DATA_WATCH" envDefault:"true"`
}

// Redis configures the optional catalog query cache. An empty Addr disables
// caching; every query is then computed from the in-memory snapshot.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
