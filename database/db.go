package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// New opens the SQLite file at dbPath, creating its directory when needed.
// Foreign keys and WAL are set through the DSN so that every pooled
// connection gets them, not only the first one.
func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

// Migrate creates the four relations and their indexes if they are absent.
// It is safe to run against an initialized store.
func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS parcels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			surface REAL NOT NULL,
			location TEXT,
			soil_type TEXT,
			description TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (account_id) REFERENCES accounts(id)
		)`,

		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parcel_id INTEGER NOT NULL,
			activity_type TEXT NOT NULL,
			date DATE NOT NULL,
			crop_type TEXT,
			variety TEXT,
			quantity REAL,
			unit TEXT,
			notes TEXT,
			cost REAL,
			weather_conditions TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (parcel_id) REFERENCES parcels(id)
		)`,

		`CREATE TABLE IF NOT EXISTS reminders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parcel_id INTEGER NOT NULL,
			activity_type TEXT,
			reminder_date DATE NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			is_completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (parcel_id) REFERENCES parcels(id)
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_parcels_account ON parcels(account_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_parcel_date ON activities(parcel_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_parcel_date ON reminders(parcel_id, reminder_date)`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_pending ON reminders(parcel_id) WHERE is_completed = 0`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
