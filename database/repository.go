package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by write operations. Services translate them
// into their own error kinds.
var (
	ErrAccountMissing  = errors.New("account does not exist")
	ErrParcelMissing   = errors.New("parcel does not exist")
	ErrReminderMissing = errors.New("reminder does not exist")
	ErrUsernameTaken   = errors.New("username already registered")
	ErrEmailTaken      = errors.New("email already registered")
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error so a failed write leaves no partial row.
func (r *Repository) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func rowExists(tx *sql.Tx, query string, args ...any) (bool, error) {
	var one int
	err := tx.QueryRow(query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// uniqueViolation reports whether err is a UNIQUE constraint failure and, if
// so, the "table.column" it names.
func uniqueViolation(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}
	msg := sqliteErr.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:], true
	}
	return msg, true
}

func foreignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
