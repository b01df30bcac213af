package database

import (
	"database/sql"
	"fmt"
	"time"

	"easytrack/internal/config"
	"easytrack/internal/logger"

	_ "github.com/lib/pq"
)

// DB wraps the sql.DB handle of the contracts database
type DB struct {
	*sql.DB
	log *logger.Logger
}

// Connect opens the Postgres connection pool and verifies it with a ping
func Connect(cfg *config.DatabaseConfig, log *logger.Logger) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Successfully connected to Postgres")

	return &DB{DB: db, log: log}, nil
}

// Health verifies the connection is still alive
func (db *DB) Health() error {
	return db.Ping()
}
