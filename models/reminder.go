package models

import "time"

// ReminderStatus is the completion state of a reminder. The only legal
// transition is pending -> completed.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
)

// Urgency drives alert styling of a reminder relative to today.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyUpcoming Urgency = "upcoming"
)

type Reminder struct {
	ID           int64          `json:"id"`
	ParcelID     int64          `json:"parcel_id"`
	ActivityType string         `json:"activity_type"`
	ReminderDate string         `json:"reminder_date"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Status       ReminderStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (r Reminder) IsCompleted() bool {
	return r.Status == ReminderCompleted
}

type CreateReminderRequest struct {
	ActivityType string `json:"activity_type" validate:"max=50"`
	ReminderDate string `json:"reminder_date" validate:"required,isodate"`
	Title        string `json:"title" validate:"notblank,max=200"`
	Description  string `json:"description" validate:"max=2000"`
}

// ReminderAlert is a pending reminder annotated for the dashboard.
type ReminderAlert struct {
	Reminder
	ParcelName string  `json:"parcel_name"`
	Urgency    Urgency `json:"urgency"`
	DaysLeft   int     `json:"days_left"`
}
