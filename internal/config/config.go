package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bookcms-backend/internal/infrastructure/database"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Database *database.DBConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// SMTPConfig configures the contact-form notification channel.
// Delivery is best-effort: a dead SMTP server must not block submissions,
// hence the SendTimeout.
type SMTPConfig struct {
	Host        string
	Port        string
	From        string
	AdminEmail  string // recipient of contact-form notifications
	SendTimeout time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	sendTimeout, err := time.ParseDuration(getEnv("SMTP_SEND_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_SEND_TIMEOUT: %w", err)
	}

	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Book Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: dbConfig,
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:        getEnv("SMTP_HOST", "localhost"),
			Port:        getEnv("SMTP_PORT", "1025"),
			From:        getEnv("SMTP_FROM", "noreply@bookcms.dev"),
			AdminEmail:  getEnv("CONTACT_ADMIN_EMAIL", "admin@bookcms.dev"),
			SendTimeout: sendTimeout,
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.SMTP.AdminEmail == "admin@bookcms.dev" {
			fmt.Println("WARNING: CONTACT_ADMIN_EMAIL not set - contact notifications go to the default address")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
