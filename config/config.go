package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	// Database (ledger journal)
	JournalEnabled   bool
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBConnectRetries int

	// Network fixture; empty means the built-in demo network
	SeedFile string

	// Logging
	LogFormat string
	Debug     bool

	// Server
	ServerPort string
	GinMode    string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		JournalEnabled:   getEnvBool("JOURNAL_ENABLED", false),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", "transit"),
		DBConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 30),

		SeedFile: os.Getenv("SEED_FILE"),

		LogFormat: getEnv("LOG_FORMAT", "console"),
		Debug:     os.Getenv("DEBUG") == "YES",

		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),
	}

	if config.DBConnectRetries < 1 {
		log.Warn().Int("retries", config.DBConnectRetries).Msg("DB_CONNECT_RETRIES must be positive, using 1")
		config.DBConnectRetries = 1
	}

	switch config.GinMode {
	case "debug", "release", "test":
	default:
		log.Warn().Str("mode", config.GinMode).Msg("Unknown GIN_MODE, using release")
		config.GinMode = "release"
	}

	if config.JournalEnabled && config.DBPassword == "" {
		log.Warn().Msg("JOURNAL_ENABLED is set but DB_PASSWORD is empty")
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid integer, using default")
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("Invalid boolean, using default")
		return defaultValue
	}
	return b
}
