package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string        `env:"ENV" env-default:"dev"`
	Port        string        `env:"PORT" env-default:"8080"`
	DatabaseURL string        `env:"DATABASE_URL" env-required:"true"`
	JWTSecret   string        `env:"JWT_SECRET" env-required:"true"`
	CORSOrigin  string        `env:"CORS_ORIGIN" env-default:"*"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" env-default:"1h"`
}

// MustLoad reads the configuration from the environment and panics when a
// required variable is missing. The JWT secret in particular has to be
// present before any token can be issued or verified.
func MustLoad() *Config {
	config, err := load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return config
}

func load() (*Config, error) {
	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
