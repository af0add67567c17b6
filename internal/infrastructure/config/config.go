package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDefaultSecret signs tokens when JWT_SECRET is unset. Anyone who
// knows it can mint admin tokens, so startup logs a loud warning whenever it
// is in use.
const InsecureDefaultSecret = "portfolio-dev-secret-do-not-use-in-production"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminConfig seeds the bootstrap admin account created on first start.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@localhost"`
	Password string `env:"ADMIN_PASSWORD, default=changeme123"`
	Name     string `env:"ADMIN_NAME,     default=Admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, generic 500 messages).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SigningSecret returns JWT_SECRET, falling back to the insecure default.
// The second return reports whether the fallback was used.
func (c *Config) SigningSecret() (string, bool) {
	if c.JWTSecret == "" {
		return InsecureDefaultSecret, true
	}
	return c.JWTSecret, false
}
