package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL" env-required:"true" validate:"required"`
	DBSSLMode       string        `env:"DB_SSLMODE" env-default:"require" validate:"oneof=disable require"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"10" validate:"gte=1"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5" validate:"gte=1"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`

	HTTPAddr       string   `env:"HTTP_ADDR" env-default:"0.0.0.0:8080"`
	CORSOrigins    []string `env:"CORS_ORIGINS" env-separator:","`
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`

	JWTSecret     string        `env:"JWT_SECRET" env-required:"true" validate:"min=32"`
	TokenTTL      time.Duration `env:"JWT_TTL" env-default:"72h"`
	AdminEmail    string        `env:"ADMIN_EMAIL" validate:"omitempty,email"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`

	LogFile  string `env:"LOG_FILE" env-default:"./logs/app.log"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=trace debug info warn error"`

	SearchBlurDelay time.Duration `env:"SEARCH_BLUR_DELAY" env-default:"200ms"`
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found – relying on env vars")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
