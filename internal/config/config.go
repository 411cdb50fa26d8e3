package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"
)

// DefaultTokenTTL is used when JWT_EXPIRES_IN is unset or unparseable.
const DefaultTokenTTL = time.Hour

// ErrMissingJWTSecret is returned when JWT_SECRET is not set. Running
// without a signing secret would make every issued token forgeable, so
// this is startup-fatal rather than a per-request condition.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string
	TokenTTL   time.Duration
	UploadDir  string
}

// Load builds Config from environment with sensible defaults.
// The only hard requirement is JWT_SECRET.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/pandimaja?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:  secret,
		TokenTTL:   getEnvDuration("JWT_EXPIRES_IN", DefaultTokenTTL),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		// Silently shortening or extending token lifetime would be worse
		// than the fallback itself.
		log.Printf("ignoring unparseable %s=%q, using %s", key, v, def)
		return def
	}
	return parsed
}
