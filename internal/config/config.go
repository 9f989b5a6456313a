// Package config loads settings from environment variables, with an
// optional .env file for local runs.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-derived settings. Per-run parameters
// (dates, seasons, QPS) come from CLI flags instead.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"brefstats"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"brefstats"`

	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	// CronSchedule triggers the daily catch-up scrape in serve mode.
	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"30 6 * * *"`
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	return &c, nil
}
