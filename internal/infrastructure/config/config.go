package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Independent signing secrets, one per credential namespace. A token
	// issued under one must never verify under the other.
	JWTUserSecret  string `env:"JWT_USER_SECRET"`
	JWTAdminSecret string `env:"JWT_ADMIN_SECRET"`

	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=30s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=course_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTUserSecret == "" || cfg.JWTAdminSecret == "" {
		return nil, fmt.Errorf("config: JWT_USER_SECRET and JWT_ADMIN_SECRET must be set")
	}
	return &cfg, nil
}
