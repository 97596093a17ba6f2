package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

const devJWTSecret = "digigov-dev-secret"

type Config struct {
	AppHost  string
	HTTPPort string
	AppEnv   string
	LogLevel string

	// DefaultLang is the language used for response messages when the
	// request carries no lang parameter ("en" or "hi").
	DefaultLang string

	// JWTSecret signs session tokens. The built-in dev value is rejected in
	// production.
	JWTSecret string

	// DataDir is the directory of the file-backed store (one <key>.json per
	// collection). Ignored when RedisURL is set.
	DataDir string

	// RedisURL — if set, collections are kept in Redis instead of files and
	// complaint events are published to EventStream.
	RedisURL    string
	EventStream string
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:     getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort:    firstEnv("APP_PORT", "HTTP_PORT", "8094"),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DefaultLang: getEnv("DEFAULT_LANG", "en"),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
		DataDir:     getEnv("DATA_DIR", "data"),
		RedisURL:    getEnv("REDIS_URL", ""),
		EventStream: getEnv("EVENT_STREAM", "digigov.complaints"),
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" && c.RedisURL == "" {
		return errors.New("config: DATA_DIR or REDIS_URL is required")
	}
	if c.DefaultLang != "en" && c.DefaultLang != "hi" {
		return errors.New("config: DEFAULT_LANG must be en or hi")
	}
	if c.AppEnv == "production" && c.JWTSecret == devJWTSecret {
		return errors.New("config: in production JWT_SECRET is required")
	}
	return nil
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
