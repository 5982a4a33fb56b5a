package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Host string `env:"API_HOST" envDefault:"0.0.0.0"`
		Port int    `env:"API_PORT" envDefault:"8080"`
	}

	// Bot API is the remote bot service every data operation is forwarded to.
	BotAPI struct {
		URL     string        `env:"API_URL" envDefault:"http://localhost:8081"`
		Key     string        `env:"API_KEY" envDefault:""`
		Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	}

	Auth struct {
		BasicEnabled  bool   `env:"AUTH_BASIC_ENABLE" envDefault:"true"`
		AdminUsername string `env:"AUTH_BASIC_ADMIN_USERNAME" envDefault:"admin"`
		AdminPassword string `env:"AUTH_BASIC_ADMIN_PASSWORD" envDefault:"admin"`

		SessionTTL          time.Duration `env:"AUTH_SESSION_TTL" envDefault:"24h"`
		SweepInterval       time.Duration `env:"AUTH_SWEEP_INTERVAL" envDefault:"1h"`
		InactivityThreshold time.Duration `env:"AUTH_INACTIVITY_THRESHOLD" envDefault:"2160h"` // 90 days
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN" envDefault:""`
	}

	CORS struct {
		Enabled        bool     `env:"AUTH_CORS_ENABLE" envDefault:"false"`
		AllowedOrigins []string `env:"AUTH_CORS_ALLOWED_ORIGINS" envSeparator:","`
		AllowedMethods []string `env:"AUTH_CORS_ALLOWED_METHODS" envSeparator:","`
		AllowedHeaders []string `env:"AUTH_CORS_ALLOWED_HEADERS" envSeparator:","`
	}

	// Redis backs the short-TTL cache for proxied read-only bot API responses.
	// Sessions never touch it.
	Redis struct {
		Enabled  bool          `env:"REDIS_CACHE_ENABLE" envDefault:"false"`
		Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int           `env:"REDIS_PORT" envDefault:"6379"`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"15s"`
	}

	Audit AuditConfig
}

// AuditConfig gates the four audit channels independently.
type AuditConfig struct {
	Enabled        bool   `env:"LOG_AUDIT_ENABLE" envDefault:"true"`
	Dir            string `env:"LOG_AUDIT_DIR" envDefault:"logs"`
	Console        bool   `env:"LOG_AUDIT_CONSOLE" envDefault:"false"`
	APICalls       bool   `env:"LOG_AUDIT_API_CALLS" envDefault:"true"`
	UserActions    bool   `env:"LOG_AUDIT_USER_ACTIONS" envDefault:"true"`
	AuthEvents     bool   `env:"LOG_AUDIT_AUTH_EVENTS" envDefault:"true"`
	SecurityEvents bool   `env:"LOG_AUDIT_SECURITY_EVENTS" envDefault:"true"`
}

func Load() (*Config, error) {
	// Missing .env is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
