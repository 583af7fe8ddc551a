package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// TablesDir optionally points at a directory of reference tables
	// to use instead of the embedded copies
	TablesDir string

	// Plain disables colored output
	Plain bool

	// DefaultCount is the number of villagers generated when no count
	// argument is given
	DefaultCount int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		TablesDir:    os.Getenv("VILLAGERS_TABLES_DIR"),
		Plain:        getEnvAsBool("VILLAGERS_PLAIN", false),
		DefaultCount: getEnvAsIntOrDefault("VILLAGERS_COUNT", 1),
	}

	// NO_COLOR is honored regardless of VILLAGERS_PLAIN
	if os.Getenv("NO_COLOR") != "" {
		cfg.Plain = true
	}

	return cfg, nil
}

// getEnvAsBool returns an environment variable as a bool, or a default
func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsIntOrDefault returns an environment variable as an int, or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
