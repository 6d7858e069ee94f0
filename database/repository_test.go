package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"monplanting/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "monplanting-db-test-*")
	require.NoError(t, err)

	db, err := New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)

	require.NoError(t, db.Migrate())

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return NewRepository(db), cleanup
}

func createAccount(t *testing.T, repo *Repository, username string) *models.Account {
	t.Helper()
	account := &models.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateAccount(account))
	return account
}

func createParcel(t *testing.T, repo *Repository, accountID int64, name string, createdAt time.Time) *models.Parcel {
	t.Helper()
	parcel := &models.Parcel{
		AccountID: accountID,
		Name:      name,
		Surface:   1.5,
		Location:  "Beauce",
		SoilType:  "silt",
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.CreateParcel(parcel))
	return parcel
}

func createActivity(t *testing.T, repo *Repository, parcelID int64, kind, date, crop string, cost float64) *models.Activity {
	t.Helper()
	activity := &models.Activity{
		ParcelID:     parcelID,
		ActivityType: kind,
		Date:         date,
		CropType:     crop,
		Cost:         cost,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateActivity(activity))
	return activity
}

func TestMigrate_Idempotent(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	account := createAccount(t, repo, "alice")

	require.NoError(t, repo.db.Migrate())
	require.NoError(t, repo.db.Migrate())

	got, err := repo.GetAccount(account.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
}

func TestAccounts(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	alice := createAccount(t, repo, "alice")
	assert.NotZero(t, alice.ID)

	t.Run("Duplicate username", func(t *testing.T) {
		err := repo.CreateAccount(&models.Account{Username: "alice", Email: "other@example.com", PasswordHash: "x", CreatedAt: time.Now()})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		err := repo.CreateAccount(&models.Account{Username: "alice2", Email: "alice@example.com", PasswordHash: "x", CreatedAt: time.Now()})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("Lookup by username", func(t *testing.T) {
		got, err := repo.GetAccountByUsername("alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.ID, got.ID)
		assert.Equal(t, "hash", got.PasswordHash)

		missing, err := repo.GetAccountByUsername("nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Update password hash", func(t *testing.T) {
		require.NoError(t, repo.UpdatePasswordHash(alice.ID, "new-hash"))
		got, err := repo.GetAccount(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", got.PasswordHash)

		assert.ErrorIs(t, repo.UpdatePasswordHash(9999, "x"), ErrAccountMissing)
	})
}

func TestParcels(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	alice := createAccount(t, repo, "alice")
	bob := createAccount(t, repo, "bob")

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	older := createParcel(t, repo, alice.ID, "Old orchard", base)
	newer := createParcel(t, repo, alice.ID, "New field", base.Add(48*time.Hour))
	createParcel(t, repo, bob.ID, "Bob's field", base.Add(time.Hour))

	t.Run("Missing account is rejected", func(t *testing.T) {
		err := repo.CreateParcel(&models.Parcel{AccountID: 9999, Name: "Ghost", Surface: 1, CreatedAt: time.Now()})
		assert.ErrorIs(t, err, ErrAccountMissing)
	})

	t.Run("List is newest first and isolated per account", func(t *testing.T) {
		parcels, err := repo.GetParcelsByAccount(alice.ID)
		require.NoError(t, err)
		require.Len(t, parcels, 2)
		assert.Equal(t, newer.ID, parcels[0].ID)
		assert.Equal(t, older.ID, parcels[1].ID)
		for _, p := range parcels {
			assert.Equal(t, alice.ID, p.AccountID)
		}
	})

	t.Run("Empty list is not nil", func(t *testing.T) {
		parcels, err := repo.GetParcelsByAccount(9999)
		require.NoError(t, err)
		assert.NotNil(t, parcels)
		assert.Empty(t, parcels)
	})

	t.Run("Get round trips fields", func(t *testing.T) {
		got, err := repo.GetParcel(older.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 1.5, got.Surface)
		assert.Equal(t, "Beauce", got.Location)
		assert.Equal(t, "", got.Description)
		assert.True(t, base.Equal(got.CreatedAt))

		missing, err := repo.GetParcel(9999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Update", func(t *testing.T) {
		p := *older
		p.Name = "Renamed orchard"
		p.Surface = 3.25
		require.NoError(t, repo.UpdateParcel(&p))

		got, err := repo.GetParcel(older.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed orchard", got.Name)
		assert.Equal(t, 3.25, got.Surface)
		assert.Equal(t, alice.ID, got.AccountID)

		p.ID = 9999
		assert.ErrorIs(t, repo.UpdateParcel(&p), ErrParcelMissing)
	})
}

func TestActivities(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	alice := createAccount(t, repo, "alice")
	bob := createAccount(t, repo, "bob")
	now := time.Now().UTC()
	north := createParcel(t, repo, alice.ID, "North", now)
	south := createParcel(t, repo, alice.ID, "South", now)
	bobs := createParcel(t, repo, bob.ID, "Bob", now)

	createActivity(t, repo, north.ID, "seeding", "2024-03-01", "wheat", 50)
	createActivity(t, repo, north.ID, "harvest", "2024-07-15", "wheat", 30)
	createActivity(t, repo, south.ID, "seeding", "2024-04-10", "maize", 20)
	createActivity(t, repo, bobs.ID, "seeding", "2024-03-05", "wheat", 99)

	t.Run("Missing parcel is rejected", func(t *testing.T) {
		err := repo.CreateActivity(&models.Activity{ParcelID: 9999, ActivityType: "seeding", Date: "2024-03-01", CreatedAt: now})
		assert.ErrorIs(t, err, ErrParcelMissing)
	})

	t.Run("By parcel is date descending", func(t *testing.T) {
		activities, err := repo.GetActivitiesByParcel(north.ID, models.ActivityFilter{})
		require.NoError(t, err)
		require.Len(t, activities, 2)
		assert.Equal(t, "2024-07-15", activities[0].Date)
		assert.Equal(t, "2024-03-01", activities[1].Date)
	})

	t.Run("By account never leaks other accounts", func(t *testing.T) {
		activities, err := repo.GetActivitiesByAccount(alice.ID, models.ActivityFilter{})
		require.NoError(t, err)
		require.Len(t, activities, 3)
		for _, a := range activities {
			assert.NotEqual(t, bobs.ID, a.ParcelID)
		}
		assert.Equal(t, []string{"2024-07-15", "2024-04-10", "2024-03-01"},
			[]string{activities[0].Date, activities[1].Date, activities[2].Date})
	})

	tests := []struct {
		name   string
		filter models.ActivityFilter
		want   []string
	}{
		{"All keyword", models.ActivityFilter{ActivityType: "all", CropType: "all"}, []string{"2024-07-15", "2024-04-10", "2024-03-01"}},
		{"Type only", models.ActivityFilter{ActivityType: "seeding"}, []string{"2024-04-10", "2024-03-01"}},
		{"Crop only", models.ActivityFilter{CropType: "maize"}, []string{"2024-04-10"}},
		{"Type and crop", models.ActivityFilter{ActivityType: "seeding", CropType: "wheat"}, []string{"2024-03-01"}},
		{"Inclusive range", models.ActivityFilter{DateFrom: "2024-03-01", DateTo: "2024-04-10"}, []string{"2024-04-10", "2024-03-01"}},
		{"Range and type", models.ActivityFilter{ActivityType: "harvest", DateTo: "2024-06-30"}, []string{}},
	}
	for _, tt := range tests {
		t.Run("Filter "+tt.name, func(t *testing.T) {
			activities, err := repo.GetActivitiesByAccount(alice.ID, tt.filter)
			require.NoError(t, err)
			got := make([]string, 0, len(activities))
			for _, a := range activities {
				got = append(got, a.Date)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Optional fields round trip", func(t *testing.T) {
		qty := 12.5
		a := &models.Activity{
			ParcelID:          south.ID,
			ActivityType:      "fertilizing",
			Date:              "2024-05-02",
			Quantity:          &qty,
			Unit:              "kg",
			Notes:             "NPK 15-15-15",
			WeatherConditions: "sunny",
			CreatedAt:         now,
		}
		require.NoError(t, repo.CreateActivity(a))

		got, err := repo.GetActivity(a.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Quantity)
		assert.Equal(t, 12.5, *got.Quantity)
		assert.Equal(t, "kg", got.Unit)
		assert.Equal(t, 0.0, got.Cost)
		assert.Equal(t, "", got.CropType)
		assert.Equal(t, "2024-05-02", got.Date)
	})
}

func TestReminders(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	alice := createAccount(t, repo, "alice")
	bob := createAccount(t, repo, "bob")
	now := time.Now().UTC()
	north := createParcel(t, repo, alice.ID, "North", now)
	bobs := createParcel(t, repo, bob.ID, "Bob", now)

	newReminder := func(parcelID int64, date, title string) *models.Reminder {
		rem := &models.Reminder{
			ParcelID:     parcelID,
			ActivityType: "watering",
			ReminderDate: date,
			Title:        title,
			Status:       models.ReminderPending,
			CreatedAt:    now,
		}
		require.NoError(t, repo.CreateReminder(rem))
		return rem
	}

	later := newReminder(north.ID, "2024-06-20", "Irrigate")
	sooner := newReminder(north.ID, "2024-06-12", "Check pump")
	newReminder(bobs.ID, "2024-06-01", "Bob's task")

	t.Run("Missing parcel is rejected", func(t *testing.T) {
		err := repo.CreateReminder(&models.Reminder{ParcelID: 9999, ReminderDate: "2024-06-01", Title: "x", CreatedAt: now})
		assert.ErrorIs(t, err, ErrParcelMissing)
	})

	t.Run("Pending is soonest first and isolated", func(t *testing.T) {
		pending, err := repo.GetPendingRemindersByAccount(alice.ID)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, sooner.ID, pending[0].ID)
		assert.Equal(t, later.ID, pending[1].ID)
		assert.Equal(t, models.ReminderPending, pending[0].Status)
	})

	t.Run("Complete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.CompleteReminder(sooner.ID))
		first, err := repo.GetReminder(sooner.ID)
		require.NoError(t, err)

		require.NoError(t, repo.CompleteReminder(sooner.ID))
		second, err := repo.GetReminder(sooner.ID)
		require.NoError(t, err)

		assert.Equal(t, models.ReminderCompleted, first.Status)
		assert.Equal(t, first, second)

		pending, err := repo.GetPendingRemindersByAccount(alice.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, later.ID, pending[0].ID)
	})

	t.Run("Complete unknown reminder", func(t *testing.T) {
		assert.ErrorIs(t, repo.CompleteReminder(9999), ErrReminderMissing)
	})

	t.Run("By parcel includes completed", func(t *testing.T) {
		reminders, err := repo.GetRemindersByParcel(north.ID)
		require.NoError(t, err)
		require.Len(t, reminders, 2)
		assert.Equal(t, "2024-06-12", reminders[0].ReminderDate)
		assert.True(t, reminders[0].IsCompleted())
	})

	t.Run("Range query", func(t *testing.T) {
		reminders, err := repo.GetRemindersByAccountBetween(alice.ID, "2024-06-15", "2024-06-30")
		require.NoError(t, err)
		require.Len(t, reminders, 1)
		assert.Equal(t, later.ID, reminders[0].ID)
	})
}
