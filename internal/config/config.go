// Package config resolves runtime settings for the evc command from the
// environment, optionally seeded by a .env file in the working directory.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDataDir   = "EVC_DATA_DIR"
	EnvDatabase  = "EVC_DB"
	EnvLogLevel  = "EVC_LOG_LEVEL"
	EnvLogFormat = "EVC_LOG_FORMAT"
)

// Config holds data-source and logging settings.
type Config struct {
	// DataDir holds spelling_crosswalk.csv, lexical_crosswalk.csv and
	// exceptions/spelling_exceptions.csv. Empty means the embedded data set.
	DataDir string
	// Database is a SQLite data pack. It takes precedence over DataDir.
	Database string

	LogLevel  string
	LogFormat string
}

// Load reads .env (if present) and the EVC_* environment variables.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:   strings.TrimSpace(os.Getenv(EnvDataDir)),
		Database:  strings.TrimSpace(os.Getenv(EnvDatabase)),
		LogLevel:  strings.TrimSpace(os.Getenv(EnvLogLevel)),
		LogFormat: strings.TrimSpace(os.Getenv(EnvLogFormat)),
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults populates zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Override replaces settings with any non-empty values, typically command
// line flags that take precedence over the environment.
func (c *Config) Override(dataDir, database, logLevel, logFormat string) {
	c.DataDir = firstNonEmpty(strings.TrimSpace(dataDir), c.DataDir)
	c.Database = firstNonEmpty(strings.TrimSpace(database), c.Database)
	c.LogLevel = firstNonEmpty(strings.TrimSpace(logLevel), c.LogLevel)
	c.LogFormat = firstNonEmpty(strings.TrimSpace(logFormat), c.LogFormat)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
