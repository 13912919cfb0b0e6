// Package config reads the runtime configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port             string
	APIURL           *url.URL
	CORSAllowOrigins []string
	EnablePprof      bool
	DB               DBConfig
}

// DBConfig configures the connection to the record store.
//
// If DSN is set, the store is a PostgreSQL database. Otherwise, a
// SQLite database in DataDir is used.
type DBConfig struct {
	DSN             string
	DataDir         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	port := getEnv("PORT", "8080")

	apiURL, err := url.Parse(getEnv("API_URL", fmt.Sprintf("http://localhost:%s", port)))
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	return Config{
		Port:             port,
		APIURL:           apiURL,
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
		DB: DBConfig{
			DSN:             firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("DB_DSN")),
			DataDir:         getEnv("DATA_DIR", "data"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
	}, nil
}

// Postgres reports if the record store is a PostgreSQL database.
func (c DBConfig) Postgres() bool {
	return c.DSN != ""
}

// SQLitePath is the path of the SQLite database file.
func (c DBConfig) SQLitePath() string {
	return filepath.Join(c.DataDir, "loans.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
