package services

import (
	"errors"
	"strings"
	"time"

	"monplanting/database"
	"monplanting/models"
	"monplanting/validator"
)

// UrgentWindow is how far ahead a pending reminder counts as urgent.
const UrgentWindow = 3 * 24 * time.Hour

// ReminderService handles business logic for scheduled reminders
type ReminderService struct {
	repo      ReminderRepository
	parcels   ParcelRepository
	validator *validator.Validator
}

// NewReminderService creates a new reminder service
func NewReminderService(repo ReminderRepository, parcels ParcelRepository, v *validator.Validator) *ReminderService {
	return &ReminderService{
		repo:      repo,
		parcels:   parcels,
		validator: v,
	}
}

// Create schedules a pending reminder on a parcel
func (rs *ReminderService) Create(parcelID int64, req models.CreateReminderRequest) (*models.Reminder, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.ReminderDate = strings.TrimSpace(req.ReminderDate)
	if err := rs.validator.Validate(req); err != nil {
		return nil, err
	}

	reminder := &models.Reminder{
		ParcelID:     parcelID,
		ActivityType: strings.TrimSpace(req.ActivityType),
		ReminderDate: req.ReminderDate,
		Title:        req.Title,
		Description:  strings.TrimSpace(req.Description),
		Status:       models.ReminderPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := rs.repo.CreateReminder(reminder); err != nil {
		if errors.Is(err, database.ErrParcelMissing) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	return reminder, nil
}

// ListPending retrieves the uncompleted reminders of an account, soonest first
func (rs *ReminderService) ListPending(accountID int64) ([]models.Reminder, error) {
	return rs.repo.GetPendingRemindersByAccount(accountID)
}

// ListByParcel retrieves all reminders of a parcel, soonest first
func (rs *ReminderService) ListByParcel(parcelID int64) ([]models.Reminder, error) {
	parcel, err := rs.parcels.GetParcel(parcelID)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrParcelNotFound
	}
	return rs.repo.GetRemindersByParcel(parcelID)
}

// ListInRange retrieves reminders of both states dated within [from, to]
func (rs *ReminderService) ListInRange(accountID int64, from, to string) ([]models.Reminder, error) {
	return rs.repo.GetRemindersByAccountBetween(accountID, from, to)
}

// Complete marks a reminder completed; completing it twice is a no-op
func (rs *ReminderService) Complete(reminderID int64) error {
	err := rs.repo.CompleteReminder(reminderID)
	if errors.Is(err, database.ErrReminderMissing) {
		return ErrReminderNotFound
	}
	return err
}

// CompleteForAccount completes a reminder only if it sits on a parcel owned
// by accountID, and returns its new state.
func (rs *ReminderService) CompleteForAccount(accountID, reminderID int64) (*models.Reminder, error) {
	reminder, err := rs.repo.GetReminder(reminderID)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	parcel, err := rs.parcels.GetParcel(reminder.ParcelID)
	if err != nil {
		return nil, err
	}
	if parcel == nil || parcel.AccountID != accountID {
		return nil, ErrReminderNotFound
	}

	if err := rs.Complete(reminderID); err != nil {
		return nil, err
	}
	reminder.Status = models.ReminderCompleted
	return reminder, nil
}

// Classify places a reminder date relative to today: overdue before today,
// urgent from today through today+3 days, upcoming after that. Only the
// calendar dates of both arguments matter.
func Classify(reminderDate, today time.Time) models.Urgency {
	d := civilDate(reminderDate)
	t := civilDate(today)

	switch {
	case d.Before(t):
		return models.UrgencyOverdue
	case !d.After(t.Add(UrgentWindow)):
		return models.UrgencyUrgent
	default:
		return models.UrgencyUpcoming
	}
}

// ClassifyReminder parses the reminder's date and classifies it
func ClassifyReminder(reminder models.Reminder, today time.Time) (models.Urgency, error) {
	d, err := time.Parse(models.DateLayout, reminder.ReminderDate)
	if err != nil {
		return "", validator.Invalid("reminder_date", "isodate", "must be a valid date in YYYY-MM-DD format")
	}
	return Classify(d, today), nil
}

// DaysUntil counts whole calendar days from today to date; negative when past
func DaysUntil(date, today time.Time) int {
	return int(civilDate(date).Sub(civilDate(today)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
