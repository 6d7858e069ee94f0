package database

import (
	"database/sql"
	"fmt"
	"strings"

	"monplanting/models"
)

// ==================== ACTIVITY OPERATIONS ====================

// date() returns plain text, which keeps the driver from converting DATE
// columns to time.Time.
const activityColumns = `a.id, a.parcel_id, a.activity_type, date(a.date),
	COALESCE(a.crop_type, ''), COALESCE(a.variety, ''), a.quantity,
	COALESCE(a.unit, ''), COALESCE(a.notes, ''), COALESCE(a.cost, 0),
	COALESCE(a.weather_conditions, ''), a.created_at`

func scanActivity(s scanner, a *models.Activity) error {
	var quantity sql.NullFloat64
	if err := s.Scan(
		&a.ID, &a.ParcelID, &a.ActivityType, &a.Date,
		&a.CropType, &a.Variety, &quantity,
		&a.Unit, &a.Notes, &a.Cost,
		&a.WeatherConditions, &a.CreatedAt,
	); err != nil {
		return err
	}
	if quantity.Valid {
		q := quantity.Float64
		a.Quantity = &q
	}
	return nil
}

// CreateActivity inserts an activity on an existing parcel and sets its ID
func (r *Repository) CreateActivity(activity *models.Activity) error {
	return r.withTx(func(tx *sql.Tx) error {
		exists, err := rowExists(tx, `SELECT 1 FROM parcels WHERE id = ?`, activity.ParcelID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrParcelMissing
		}

		res, err := tx.Exec(`
			INSERT INTO activities (parcel_id, activity_type, date, crop_type, variety,
				quantity, unit, notes, cost, weather_conditions, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			activity.ParcelID, activity.ActivityType, activity.Date,
			nullString(activity.CropType), nullString(activity.Variety),
			nullFloat(activity.Quantity), nullString(activity.Unit), nullString(activity.Notes),
			activity.Cost, nullString(activity.WeatherConditions), activity.CreatedAt,
		)
		if foreignKeyViolation(err) {
			return ErrParcelMissing
		}
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}

		activity.ID, err = res.LastInsertId()
		return err
	})
}

// GetActivity retrieves an activity by ID, or nil when it does not exist
func (r *Repository) GetActivity(activityID int64) (*models.Activity, error) {
	var a models.Activity
	err := scanActivity(r.db.QueryRow(`SELECT `+activityColumns+` FROM activities a WHERE a.id = ?`, activityID), &a)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActivitiesByParcel retrieves the filtered activities of one parcel, latest date first
func (r *Repository) GetActivitiesByParcel(parcelID int64, filter models.ActivityFilter) ([]models.Activity, error) {
	where, args := activityConditions(filter)
	return r.queryActivities(`
		SELECT `+activityColumns+`
		FROM activities a
		WHERE a.parcel_id = ?`+where+`
		ORDER BY a.date DESC, a.id DESC
	`, append([]any{parcelID}, args...)...)
}

// GetActivitiesByAccount retrieves the filtered activities of every parcel an
// account owns. Ownership is resolved through the parcels join.
func (r *Repository) GetActivitiesByAccount(accountID int64, filter models.ActivityFilter) ([]models.Activity, error) {
	where, args := activityConditions(filter)
	return r.queryActivities(`
		SELECT `+activityColumns+`
		FROM activities a
		JOIN parcels p ON p.id = a.parcel_id
		WHERE p.account_id = ?`+where+`
		ORDER BY a.date DESC, a.id DESC
	`, append([]any{accountID}, args...)...)
}

func (r *Repository) queryActivities(query string, args ...any) ([]models.Activity, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		var a models.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// activityConditions turns a filter into AND-ed SQL conditions
func activityConditions(filter models.ActivityFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if models.Restricts(filter.ActivityType) {
		clauses = append(clauses, "a.activity_type = ?")
		args = append(args, strings.TrimSpace(filter.ActivityType))
	}
	if models.Restricts(filter.CropType) {
		clauses = append(clauses, "a.crop_type = ?")
		args = append(args, strings.TrimSpace(filter.CropType))
	}
	if filter.DateFrom != "" {
		clauses = append(clauses, "a.date >= ?")
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		clauses = append(clauses, "a.date <= ?")
		args = append(args, filter.DateTo)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(clauses, " AND "), args
}
