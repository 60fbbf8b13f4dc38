package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrMissingRedisURI = errors.New("redis uri missing")

type Config struct {
	Port            string        `env:"PORT" env-default:"8080"`
	Env             string        `env:"ENV" env-default:"development"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	OpenapiLocation string        `env:"OPENAPI_LOCATION" env-default:"./api/openapi.json"`
	Test            bool          `env:"TEST" env-default:"false"`
	Redis           RedisConfig
	BuildCacheTTL   time.Duration `env:"BUILD_CACHE_TTL" env-default:"10m"`
}

type RedisConfig struct {
	ResponsesCacheURI string        `env:"RESPONSES_CACHE_REDIS_URI"`
	GroupingURI       string        `env:"GROUPING_REDIS_URI"`
	DialTimeout       time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"4s"`
	ReadTimeout       time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout      time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s"`
}

// Load reads an optional .env file and then the process environment.
// Values already present in the environment win over the file.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	_ = godotenv.Load(dotenvFiles...)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Redis.ResponsesCacheURI == "" {
		return fmt.Errorf("RESPONSES_CACHE_REDIS_URI: %w", ErrMissingRedisURI)
	}
	if c.Redis.GroupingURI == "" {
		return fmt.Errorf("GROUPING_REDIS_URI: %w", ErrMissingRedisURI)
	}
	if c.BuildCacheTTL <= 0 {
		return fmt.Errorf("BUILD_CACHE_TTL must be positive, got %s", c.BuildCacheTTL)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ListenAddress binds to localhost only when running under test.
func (c *Config) ListenAddress() string {
	var host string
	if c.Test {
		host = "localhost"
	}

	return fmt.Sprintf("%s:%s", host, c.Port)
}
