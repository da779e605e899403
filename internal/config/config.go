package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Database drivers selectable through DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	DBDriver      string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	SessionSecret string
}

func Load() *Config {
	// A local .env is optional; real environments set the variables
	// directly.
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBDriver:      getEnv("DB_DRIVER", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "fantasyuser"),
		DBPassword:    getEnv("DB_PASSWORD", "fantasypassword"),
		DBName:        getEnv("DB_NAME", "fantasy_football"),
		SQLitePath:    getEnv("SQLITE_PATH", "fantasy_football.db"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
	}
}

// DatabaseDriver resolves the configured driver. When DB_DRIVER is unset,
// a DATABASE_URL selects postgres (the hosted deployment) and anything
// else falls back to the local sqlite file.
func (c *Config) DatabaseDriver() string {
	if c.DBDriver != "" {
		return c.DBDriver
	}
	if c.DatabaseURL != "" {
		return DriverPostgres
	}
	return DriverSQLite
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
