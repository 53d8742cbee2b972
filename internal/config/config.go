package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	AI       AIConfig       `envPrefix:"AI_"`
	Executor ExecutorConfig `envPrefix:"EXECUTOR_"`
}

type AppConfig struct {
	Name        string `env:"NAME" envDefault:"career-connect"`
	Environment string `env:"ENV" envDefault:"development"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
}

type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"career_connect"`
	User     string `env:"USER" envDefault:"career_connect"`
	Password string `env:"PASSWORD"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"`

	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns   int32         `env:"POOL_MAX_CONNS" envDefault:"10"`
	PoolMinConns   int32         `env:"POOL_MIN_CONNS" envDefault:"0"`
}

type RedisConfig struct {
	Host     string        `env:"HOST" envDefault:"localhost"`
	Port     string        `env:"PORT" envDefault:"6379"`
	Password string        `env:"PASSWORD"`
	TTL      time.Duration `env:"TTL" envDefault:"10m"`
}

// AIConfig configures the Gemini-backed question generator and career chat.
type AIConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.5-flash"`
}

// ExecutorConfig configures the external code-execution service.
type ExecutorConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://judge0-ce.p.rapidapi.com"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
