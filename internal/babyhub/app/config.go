package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Identity provider integration.
	IdentityIssuer        string // Required: issuer claim on provider session tokens
	IdentityPublicKeyFile string // Required: raw Ed25519 public key for session verification
	IdentityTokenURL      string // Required: provider token endpoint for code exchange

	BootstrapToken string // Optional: token required to seed the first invite codes

	DatabaseFile         string        // Path to SQLite database file (default: ./babyhub.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-code purge interval (default: 1h)

	ProfilePollInterval time.Duration // Callback profile wait poll interval (default: 100ms)
	ProfilePollTimeout  time.Duration // Callback profile wait deadline (default: 2s)
}

func LoadConfig() Config {
	return Config{
		IdentityIssuer:        os.Getenv("IDENTITY_ISSUER"),
		IdentityPublicKeyFile: getEnvOrDefault("IDENTITY_PUBLIC_KEY_FILE", "identity.pub"),
		IdentityTokenURL:      os.Getenv("IDENTITY_TOKEN_URL"),

		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "babyhub.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),

		ProfilePollInterval: getEnvDurationOrDefault("PROFILE_POLL_INTERVAL", 100*time.Millisecond),
		ProfilePollTimeout:  getEnvDurationOrDefault("PROFILE_POLL_TIMEOUT", 2*time.Second),
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
