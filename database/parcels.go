package database

import (
	"database/sql"
	"fmt"

	"monplanting/models"
)

// ==================== PARCEL OPERATIONS ====================

const parcelColumns = `id, account_id, name, surface,
	COALESCE(location, ''), COALESCE(soil_type, ''), COALESCE(description, ''),
	created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanParcel(s scanner, p *models.Parcel) error {
	return s.Scan(&p.ID, &p.AccountID, &p.Name, &p.Surface,
		&p.Location, &p.SoilType, &p.Description, &p.CreatedAt)
}

// CreateParcel inserts a parcel for an existing account and sets its ID
func (r *Repository) CreateParcel(parcel *models.Parcel) error {
	return r.withTx(func(tx *sql.Tx) error {
		exists, err := rowExists(tx, `SELECT 1 FROM accounts WHERE id = ?`, parcel.AccountID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrAccountMissing
		}

		res, err := tx.Exec(`
			INSERT INTO parcels (account_id, name, surface, location, soil_type, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			parcel.AccountID, parcel.Name, parcel.Surface,
			nullString(parcel.Location), nullString(parcel.SoilType), nullString(parcel.Description),
			parcel.CreatedAt,
		)
		if foreignKeyViolation(err) {
			return ErrAccountMissing
		}
		if err != nil {
			return fmt.Errorf("insert parcel: %w", err)
		}

		parcel.ID, err = res.LastInsertId()
		return err
	})
}

// GetParcel retrieves a parcel by ID, or nil when it does not exist
func (r *Repository) GetParcel(parcelID int64) (*models.Parcel, error) {
	var p models.Parcel
	err := scanParcel(r.db.QueryRow(`SELECT `+parcelColumns+` FROM parcels WHERE id = ?`, parcelID), &p)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetParcelsByAccount retrieves all parcels of an account, newest first
func (r *Repository) GetParcelsByAccount(accountID int64) ([]models.Parcel, error) {
	rows, err := r.db.Query(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE account_id = ?
		ORDER BY created_at DESC, id DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	parcels := make([]models.Parcel, 0)
	for rows.Next() {
		var p models.Parcel
		if err := scanParcel(rows, &p); err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, rows.Err()
}

// UpdateParcel rewrites the editable fields of a parcel. Owner and creation
// time never change.
func (r *Repository) UpdateParcel(parcel *models.Parcel) error {
	res, err := r.db.Exec(`
		UPDATE parcels SET
			name = ?,
			surface = ?,
			location = ?,
			soil_type = ?,
			description = ?
		WHERE id = ?
	`,
		parcel.Name, parcel.Surface,
		nullString(parcel.Location), nullString(parcel.SoilType), nullString(parcel.Description),
		parcel.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrParcelMissing
	}
	return nil
}
