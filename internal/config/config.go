package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port               string
	DataFile           string // JSON document holding the whole collection
	StorageDir         string // root for uploaded files, served under /storage
	KafkaBroker        string // empty disables event publishing
	RateLimitPerMinute int
}

func Load() Config {
	return Config{
		Port:               getEnv("PORT", "3000"),
		DataFile:           getEnv("DATA_FILE", "storage/app/employees.json"),
		StorageDir:         getEnv("STORAGE_DIR", "storage/public"),
		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			return value
		}
	}
	return fallback
}
