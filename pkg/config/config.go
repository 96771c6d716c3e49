package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend selectors.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port        string
	Storage     string
	DatabaseURL string
	JWTSecret   string
	JWTTTLHours int
	BcryptCost  int
	SeedDemo    bool
	CORSOrigins string
	LogLevel    string
}

// Load reads environment variables, optionally from a .env file if present.
// defaultPort lets each service binary pick its own port without extra env.
func Load(defaultPort string) Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", defaultPort),
		Storage:     getEnv("STORAGE", StoragePostgres),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change"),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 24),
		BcryptCost:  getEnvInt("BCRYPT_COST", 12),
		SeedDemo:    getEnvBool("SEED_DEMO_DATA", false),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
