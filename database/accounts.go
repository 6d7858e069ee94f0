package database

import (
	"database/sql"
	"fmt"
	"strings"

	"monplanting/models"
)

// ==================== ACCOUNT OPERATIONS ====================

const accountColumns = `id, username, email, password_hash, created_at`

func scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAccount inserts a new account and sets its ID. The uniqueness checks
// and the insert share one transaction; a UNIQUE failure raised by a racing
// writer maps to the same sentinels.
func (r *Repository) CreateAccount(account *models.Account) error {
	return r.withTx(func(tx *sql.Tx) error {
		taken, err := rowExists(tx, `SELECT 1 FROM accounts WHERE username = ?`, account.Username)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}

		taken, err = rowExists(tx, `SELECT 1 FROM accounts WHERE email = ?`, account.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		res, err := tx.Exec(`
			INSERT INTO accounts (username, email, password_hash, created_at)
			VALUES (?, ?, ?, ?)
		`, account.Username, account.Email, account.PasswordHash, account.CreatedAt)
		if column, ok := uniqueViolation(err); ok {
			if strings.HasSuffix(column, ".email") {
				return ErrEmailTaken
			}
			return ErrUsernameTaken
		}
		if err != nil {
			return fmt.Errorf("insert account: %w", err)
		}

		account.ID, err = res.LastInsertId()
		return err
	})
}

// GetAccount retrieves an account by ID
func (r *Repository) GetAccount(accountID int64) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, accountID))
}

// GetAccountByUsername retrieves an account by its exact username
func (r *Repository) GetAccountByUsername(username string) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username))
}

// UpdatePasswordHash replaces the stored digest, used when upgrading legacy hashes.
func (r *Repository) UpdatePasswordHash(accountID int64, hash string) error {
	res, err := r.db.Exec(`UPDATE accounts SET password_hash = ? WHERE id = ?`, hash, accountID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAccountMissing
	}
	return nil
}
