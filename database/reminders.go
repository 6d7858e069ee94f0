package database

import (
	"database/sql"
	"fmt"

	"monplanting/models"
)

// ==================== REMINDER OPERATIONS ====================

const reminderColumns = `r.id, r.parcel_id, COALESCE(r.activity_type, ''), date(r.reminder_date),
	r.title, COALESCE(r.description, ''), r.is_completed, r.created_at`

func scanReminder(s scanner, rem *models.Reminder) error {
	var completed bool
	if err := s.Scan(
		&rem.ID, &rem.ParcelID, &rem.ActivityType, &rem.ReminderDate,
		&rem.Title, &rem.Description, &completed, &rem.CreatedAt,
	); err != nil {
		return err
	}
	rem.Status = models.ReminderPending
	if completed {
		rem.Status = models.ReminderCompleted
	}
	return nil
}

// CreateReminder inserts a pending reminder on an existing parcel and sets its ID
func (r *Repository) CreateReminder(reminder *models.Reminder) error {
	return r.withTx(func(tx *sql.Tx) error {
		exists, err := rowExists(tx, `SELECT 1 FROM parcels WHERE id = ?`, reminder.ParcelID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrParcelMissing
		}

		res, err := tx.Exec(`
			INSERT INTO reminders (parcel_id, activity_type, reminder_date, title, description, is_completed, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			reminder.ParcelID, nullString(reminder.ActivityType), reminder.ReminderDate,
			reminder.Title, nullString(reminder.Description),
			reminder.Status == models.ReminderCompleted, reminder.CreatedAt,
		)
		if foreignKeyViolation(err) {
			return ErrParcelMissing
		}
		if err != nil {
			return fmt.Errorf("insert reminder: %w", err)
		}

		reminder.ID, err = res.LastInsertId()
		return err
	})
}

// GetReminder retrieves a reminder by ID, or nil when it does not exist
func (r *Repository) GetReminder(reminderID int64) (*models.Reminder, error) {
	var rem models.Reminder
	err := scanReminder(r.db.QueryRow(`SELECT `+reminderColumns+` FROM reminders r WHERE r.id = ?`, reminderID), &rem)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

// GetRemindersByParcel retrieves every reminder of a parcel, soonest first
func (r *Repository) GetRemindersByParcel(parcelID int64) ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT `+reminderColumns+`
		FROM reminders r
		WHERE r.parcel_id = ?
		ORDER BY r.reminder_date ASC, r.id ASC
	`, parcelID)
}

// GetPendingRemindersByAccount retrieves the uncompleted reminders on every
// parcel of an account, soonest first
func (r *Repository) GetPendingRemindersByAccount(accountID int64) ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT `+reminderColumns+`
		FROM reminders r
		JOIN parcels p ON p.id = r.parcel_id
		WHERE p.account_id = ? AND r.is_completed = 0
		ORDER BY r.reminder_date ASC, r.id ASC
	`, accountID)
}

// GetRemindersByAccountBetween retrieves reminders of both states whose date
// lies in [from, to], soonest first
func (r *Repository) GetRemindersByAccountBetween(accountID int64, from, to string) ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT `+reminderColumns+`
		FROM reminders r
		JOIN parcels p ON p.id = r.parcel_id
		WHERE p.account_id = ? AND r.reminder_date >= ? AND r.reminder_date <= ?
		ORDER BY r.reminder_date ASC, r.id ASC
	`, accountID, from, to)
}

// CompleteReminder marks a reminder completed. Completing an already
// completed reminder changes nothing.
func (r *Repository) CompleteReminder(reminderID int64) error {
	return r.withTx(func(tx *sql.Tx) error {
		var completed bool
		err := tx.QueryRow(`SELECT is_completed FROM reminders WHERE id = ?`, reminderID).Scan(&completed)
		if err == sql.ErrNoRows {
			return ErrReminderMissing
		}
		if err != nil {
			return err
		}
		if completed {
			return nil
		}

		if _, err := tx.Exec(`UPDATE reminders SET is_completed = 1 WHERE id = ? AND is_completed = 0`, reminderID); err != nil {
			return fmt.Errorf("complete reminder: %w", err)
		}
		return nil
	})
}

func (r *Repository) queryReminders(query string, args ...any) ([]models.Reminder, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		var rem models.Reminder
		if err := scanReminder(rows, &rem); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}
