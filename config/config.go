package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

type Config struct {
	ServerPort int
	Database   DatabaseConfig
	CORS       CORSConfig
	Log        LogConfig
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// CORSConfig enables cross-origin requests when AllowedOrigins is non-empty.
type CORSConfig struct {
	AllowedOrigins []string
}

func (c CORSConfig) Enabled() bool {
	return len(c.AllowedOrigins) > 0
}

type LogConfig struct {
	Level       string
	Development bool
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first; variables already set take precedence.
func LoadConfig() Config {
	_ = godotenv.Load()

	// The lowercase names are the keys of the legacy .env layout.
	dbConfig := DatabaseConfig{
		Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPQ)),
		Host:     getEnv("DB_HOST", getEnv("host", "localhost")),
		Port:     getEnvInt("DB_PORT", getEnvInt("port", 5432)),
		User:     getEnv("DB_USER", getEnv("user", "postgres")),
		Password: getEnv("DB_PASSWORD", getEnv("password", "")),
		DBName:   getEnv("DB_NAME", getEnv("dbname", "registry")),
		UseSSL:   getEnvBool("DB_USE_SSL", false),
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", getEnvInt("PORT", 8000)),
		Database:   dbConfig,
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: os.Getenv("ENV") == "dev",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		value, err := strconv.Atoi(strings.TrimSpace(valueStr))
		if err != nil {
			return defaultValue
		}
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
		if err != nil {
			return defaultValue
		}
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
