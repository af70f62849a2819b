// Package config loads the server-side configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port               string
	DBPath             string
	PipedriveBaseURL   string
	PipedriveAPIToken  string
	PipedrivePipeline  int
	PipedriveStage     int
	MinLoadingDuration time.Duration
	Environment        string
}

// Load reads the configuration. A .env file in the working directory is
// applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("RADARPME_PORT", "8080"),
		DBPath:             getEnv("RADARPME_DB", ""),
		PipedriveBaseURL:   getEnv("RADARPME_PIPEDRIVE_BASE_URL", ""),
		PipedriveAPIToken:  getEnv("RADARPME_PIPEDRIVE_API_TOKEN", ""),
		PipedrivePipeline:  getEnvInt("RADARPME_PIPEDRIVE_PIPELINE_ID", 0),
		PipedriveStage:     getEnvInt("RADARPME_PIPEDRIVE_STAGE_ID", 0),
		MinLoadingDuration: getEnvDuration("RADARPME_MIN_LOADING", 4*time.Second),
		Environment:        getEnv("RADARPME_ENV", "development"),
	}
}

// CRMEnabled reports whether a Pipedrive connection is configured.
func (c *Config) CRMEnabled() bool {
	return c.PipedriveBaseURL != "" && c.PipedriveAPIToken != ""
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
