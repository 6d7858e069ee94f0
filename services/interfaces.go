package services

import "monplanting/models"

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	CreateAccount(account *models.Account) error
	GetAccount(accountID int64) (*models.Account, error)
	GetAccountByUsername(username string) (*models.Account, error)
	UpdatePasswordHash(accountID int64, hash string) error
}

// ParcelRepository defines the interface for parcel data access
type ParcelRepository interface {
	CreateParcel(parcel *models.Parcel) error
	GetParcel(parcelID int64) (*models.Parcel, error)
	GetParcelsByAccount(accountID int64) ([]models.Parcel, error)
	UpdateParcel(parcel *models.Parcel) error
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	CreateActivity(activity *models.Activity) error
	GetActivity(activityID int64) (*models.Activity, error)
	GetActivitiesByParcel(parcelID int64, filter models.ActivityFilter) ([]models.Activity, error)
	GetActivitiesByAccount(accountID int64, filter models.ActivityFilter) ([]models.Activity, error)
}

// ReminderRepository defines the interface for reminder data access
type ReminderRepository interface {
	CreateReminder(reminder *models.Reminder) error
	GetReminder(reminderID int64) (*models.Reminder, error)
	GetRemindersByParcel(parcelID int64) ([]models.Reminder, error)
	GetPendingRemindersByAccount(accountID int64) ([]models.Reminder, error)
	GetRemindersByAccountBetween(accountID int64, from, to string) ([]models.Reminder, error)
	CompleteReminder(reminderID int64) error
}

// The analytics service only reads, through the listing operations below.

type ParcelLister interface {
	List(accountID int64) ([]models.Parcel, error)
}

type ActivityLister interface {
	ListByAccount(accountID int64, filter models.ActivityFilter) ([]models.Activity, error)
}

type ReminderLister interface {
	ListPending(accountID int64) ([]models.Reminder, error)
	ListInRange(accountID int64, from, to string) ([]models.Reminder, error)
}
