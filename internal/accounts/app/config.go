package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/solwayhq/accounts/pkg/jwtx"
)

type Config struct {
	Secret   string   // Required: symmetric signing secret for session tokens
	Issuer   string   // Issuer claim for tokens (default: accounts)
	Audience []string // Audience claim for tokens (default: accounts-web)

	TokenTTL     time.Duration // Session token validity window (default: 24h)
	DatabaseFile string        // Path to SQLite database file (default: ./accounts.db)
	PepperFile   string        // Path to the password-hashing pepper file (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Secret:   os.Getenv("ACCOUNTS_SECRET"),
		Issuer:   getEnvOrDefault("ACCOUNTS_ISSUER", "accounts"),
		Audience: splitList(getEnvOrDefault("ACCOUNTS_AUDIENCE", "accounts-web")),

		TokenTTL:     getEnvDurationOrDefault("ACCOUNTS_TOKEN_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile: getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		PepperFile:   getEnvOrDefault("ACCOUNTS_PEPPER_FILE", "pepper"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
