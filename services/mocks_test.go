package services

import (
	"monplanting/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockAccountRepository is a mock implementation of AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

var _ AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) CreateAccount(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetAccount(accountID int64) (*models.Account, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetAccountByUsername(username string) (*models.Account, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdatePasswordHash(accountID int64, hash string) error {
	args := m.Called(accountID, hash)
	return args.Error(0)
}

// MockParcelRepository is a mock implementation of ParcelRepository interface
type MockParcelRepository struct {
	mock.Mock
}

var _ ParcelRepository = (*MockParcelRepository)(nil)

func (m *MockParcelRepository) CreateParcel(parcel *models.Parcel) error {
	args := m.Called(parcel)
	return args.Error(0)
}

func (m *MockParcelRepository) GetParcel(parcelID int64) (*models.Parcel, error) {
	args := m.Called(parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetParcelsByAccount(accountID int64) ([]models.Parcel, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Parcel), args.Error(1)
}

func (m *MockParcelRepository) UpdateParcel(parcel *models.Parcel) error {
	args := m.Called(parcel)
	return args.Error(0)
}

// MockActivityRepository is a mock implementation of ActivityRepository interface
type MockActivityRepository struct {
	mock.Mock
}

var _ ActivityRepository = (*MockActivityRepository)(nil)

func (m *MockActivityRepository) CreateActivity(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) GetActivity(activityID int64) (*models.Activity, error) {
	args := m.Called(activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityRepository) GetActivitiesByParcel(parcelID int64, filter models.ActivityFilter) ([]models.Activity, error) {
	args := m.Called(parcelID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) GetActivitiesByAccount(accountID int64, filter models.ActivityFilter) ([]models.Activity, error) {
	args := m.Called(accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activity), args.Error(1)
}

// MockReminderRepository is a mock implementation of ReminderRepository interface
type MockReminderRepository struct {
	mock.Mock
}

var _ ReminderRepository = (*MockReminderRepository)(nil)

func (m *MockReminderRepository) CreateReminder(reminder *models.Reminder) error {
	args := m.Called(reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) GetReminder(reminderID int64) (*models.Reminder, error) {
	args := m.Called(reminderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reminder), args.Error(1)
}

func (m *MockReminderRepository) GetRemindersByParcel(parcelID int64) ([]models.Reminder, error) {
	args := m.Called(parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reminder), args.Error(1)
}

func (m *MockReminderRepository) GetPendingRemindersByAccount(accountID int64) ([]models.Reminder, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reminder), args.Error(1)
}

func (m *MockReminderRepository) GetRemindersByAccountBetween(accountID int64, from, to string) ([]models.Reminder, error) {
	args := m.Called(accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reminder), args.Error(1)
}

func (m *MockReminderRepository) CompleteReminder(reminderID int64) error {
	args := m.Called(reminderID)
	return args.Error(0)
}
