package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	Env                    string
	DBPath                 string
	LogLevel               string
	CORSOrigins            string
	SessionTTL             time.Duration
	SessionCleanupSchedule string
	BcryptCost             int
}

var AppConfig *Config

// Load reads .env when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:                   GetEnv("PORT", "3000"),
		Env:                    GetEnv("ENV", "development"),
		DBPath:                 GetEnv("DB_PATH", "./data/monplanting.db"),
		LogLevel:               GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:            GetEnv("CORS_ORIGINS", "*"),
		SessionTTL:             GetEnvDuration("SESSION_TTL", 30*24*time.Hour),
		SessionCleanupSchedule: GetEnv("SESSION_CLEANUP_SCHEDULE", "@hourly"),
		BcryptCost:             GetEnvInt("BCRYPT_COST", 0),
	}
	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}
