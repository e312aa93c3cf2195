package config

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	// Database
	DBPath string

	// Server
	Host        string
	Port        string
	Environment string
}

func Load() *Config {
	return &Config{
		// Database - a single sqlite file next to the binary by default
		DBPath: getEnv("DB_PATH", "fragrances.db"),

		// Server - loopback only; this is a local desktop process, the HTTP
		// surface exists for the bundled UI, not for the network
		Host:        getEnv("HOST", "127.0.0.1"),
		Port:        getEnv("PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	// foreign_keys pragma is off by default in sqlite; the sales ledger
	// relies on it
	dsn := fmt.Sprintf("%s?_foreign_keys=on", cfg.DBPath)

	var logLevel logger.LogLevel
	if cfg.Environment == "production" {
		logLevel = logger.Error
	} else {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
