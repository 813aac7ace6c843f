package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DevAPI  DevAPIConfig
	Redis   RedisConfig
	Session SessionConfig
	Poll    PollConfig
}

// DevAPIConfig targets the remote DevApi backend that owns all business data.
type DevAPIConfig struct {
	// BaseURL is read once at startup; the client is not re-configurable
	// per request.
	BaseURL string `env:"DEVAPI_URL, default=https://api.azdevops.io/api"`
	// ServiceToken, when set, enables the shared background pollers for
	// device status and GPS positions. Without it the panel falls back to
	// per-request fetches using the operator's own session token.
	ServiceToken string `env:"DEVAPI_SERVICE_TOKEN"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL,    default=168h"`
	SecureCookies bool          `env:"SECURE_COOKIES, default=true"`
}

type PollConfig struct {
	Interval time.Duration `env:"POLL_INTERVAL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the panel runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
