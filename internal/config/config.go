package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	MongoURI       string   `env:"MONGO_URI,required"`
	MongoDatabase  string   `env:"MONGO_DB" envDefault:"tolujohn"`
	JWTSecret      string   `env:"JWT_SECRET,required"`
	JWTTTLSeconds  int64    `env:"JWT_TTL_SECONDS" envDefault:"604800"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	Port           int      `env:"PORT" envDefault:"5000"`
	Env            string   `env:"APP_ENV" envDefault:"development"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTLSeconds) * time.Second
}

func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
