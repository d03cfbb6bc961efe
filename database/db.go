package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"transit-ticketing/config"
)

var DB *sql.DB

// Connect opens the PostgreSQL connection used by the ledger journal
func Connect(cfg *config.Config) error {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(2)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection with retries
	for i := 0; i < cfg.DBConnectRetries; i++ {
		err = DB.Ping()
		if err == nil {
			log.Info().Str("host", cfg.DBHost).Msg("Successfully connected to database")
			return nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max", cfg.DBConnectRetries).Msg("Failed to connect to database")
		time.Sleep(2 * time.Second)
	}

	return fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.DBConnectRetries, err)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return DB
}
