package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
}

type HTTPConfig struct {
	Port         string        `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	CORSOrigin   string        `env:"CORS_ORIGIN" env-default:"http://localhost:3000"`
}

type DBConfig struct {
	DSN string `env:"DATABASE_DSN" env-required:"true"`
	// DemoDelay inserts an artificial pause before the revenue and
	// latest-invoice queries, used to demonstrate streaming UIs. Off by default.
	DemoDelay time.Duration `env:"DASHBOARD_DEMO_DELAY" env-default:"0s"`
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD" env-default:""`
	DB         int           `env:"REDIS_DB" env-default:"0"`
	CacheTTL   time.Duration `env:"REDIS_CACHE_TTL" env-default:"60s"`
	SessionTTL time.Duration `env:"SESSION_TTL" env-default:"24h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
