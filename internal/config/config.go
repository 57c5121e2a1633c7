package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string        `env:"HTTP_PORT" envDefault:"8080"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	MatchCacheTTL time.Duration `env:"MATCH_CACHE_TTL" envDefault:"10m"`
	// Seed 0 usa una semilla basada en el reloj.
	Seed          int64 `env:"SEED" envDefault:"0"`
	SeedEmployees int   `env:"SEED_EMPLOYEES" envDefault:"12"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.SeedEmployees < 0 {
		cfg.SeedEmployees = 0
	}
	return &cfg, nil
}
