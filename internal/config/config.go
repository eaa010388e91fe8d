package config

import (
	"os"
	"strconv"

	"welltwin/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Data      DataConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings. An empty URL means
// job runs are kept in memory only.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds catalog file settings
type DataConfig struct {
	SlurryFile string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			SlurryFile: getEnvOrDefault("SLURRY_FILE", "data/sample_slurries.csv"),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "failed to validate configuration")
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Data.SlurryFile == "" {
		return errors.ConfigInvalid("SLURRY_FILE cannot be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric, got " + c.Server.Port)
	}
	return nil
}

// HasDatabase reports whether a PostgreSQL store is configured
func (c *Config) HasDatabase() bool {
	return c.Database.URL != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
