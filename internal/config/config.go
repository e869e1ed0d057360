package config

import (
	"os"
)

type Config struct {
	ProjectID        string
	LogLevel         string
	Port             string
	SnapshotSchedule string
}

func New() *Config {
	return &Config{
		ProjectID:        os.Getenv("PROJECTID"),
		LogLevel:         os.Getenv("LOGLEVEL"),
		Port:             getOrDefault("PORT", "8080"),
		SnapshotSchedule: getOrDefault("SNAPSHOTSCHEDULE", "0 0 * * *"),
	}
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
