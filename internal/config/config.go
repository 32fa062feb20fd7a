package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Backup   BackupConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// BackupConfig controls the snapshot export of the holdings file.
// DebounceDelay is the quiet period that coalesces bursts of mutations
// into a single backup write; CronSchedule additionally writes one backup
// per day regardless of activity.
type BackupConfig struct {
	Dir           string
	CronSchedule  string
	DebounceDelay time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	debounceMs, err := strconv.Atoi(getEnv("BACKUP_DEBOUNCE_MS", "300"))
	if err != nil || debounceMs < 0 {
		return nil, fmt.Errorf("invalid BACKUP_DEBOUNCE_MS: %q", getEnv("BACKUP_DEBOUNCE_MS", "300"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/budget_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Backup: BackupConfig{
			Dir:           getEnv("BACKUP_DIR", "./data/backups"),
			CronSchedule:  getEnv("BACKUP_CRON", "0 3 * * *"),
			DebounceDelay: time.Duration(debounceMs) * time.Millisecond,
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
