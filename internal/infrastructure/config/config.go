package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all process-wide settings. JWTSecret signs every issued token
// and has no default: starting without it would silently issue forgeable
// tokens, so envconfig marks it required.
type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=30m"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Speller SpellerConfig
	Audit   AuditConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  default=notes_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SpellerConfig struct {
	URL     string        `env:"SPELLER_URL,     default=https://speller.yandex.net/services/spellservice.json/checkText"`
	Timeout time.Duration `env:"SPELLER_TIMEOUT, default=5s"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values (JWT_SECRET, MONGO_URI) are a fatal startup
// condition surfaced as an error, never defaulted.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
