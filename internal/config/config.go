package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Server
	ServerPort string
	ServerEnv  string

	// Database
	DatabaseURL string

	// JWT
	JWTSecretKey    string
	JWTExpiresHours int

	// Rate limiting (global, per IP)
	RateLimitMax       int
	RateLimitWindowMin int

	// CORS
	FrontendURL string

	// OTLP collector endpoint (tracing/metrics disabled when empty)
	OTLPEndpoint string
}

func Load() *Config {
	return &Config{
		// Server
		ServerPort: getEnv("SERVER_PORT", "3001"),
		ServerEnv:  getEnv("SERVER_ENV", "development"),

		// Database - DATABASE_URL wins, otherwise built from POSTGRES_* vars
		DatabaseURL: getDatabaseURL(),

		// JWT - the fallback secret matches deployments that never set one;
		// known weakness, kept on purpose
		JWTSecretKey:    getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiresHours: getEnvAsInt("JWT_EXPIRES_HOURS", 24),

		// Rate limiting
		RateLimitMax:       getEnvAsInt("RATE_LIMIT_MAX", 100),
		RateLimitWindowMin: getEnvAsInt("RATE_LIMIT_WINDOW_MINUTES", 15),

		// CORS
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Telemetry
		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDatabaseURL returns DATABASE_URL or builds it from individual env vars
func getDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "")
	dbname := getEnv("POSTGRES_DB", "aurareach")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode)
}
