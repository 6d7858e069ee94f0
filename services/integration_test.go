package services

import (
	"os"
	"path/filepath"
	"testing"

	"monplanting/database"
	"monplanting/models"
	"monplanting/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServices struct {
	repo      *database.Repository
	auth      *AuthService
	parcels   *ParcelService
	activity  *ActivityService
	reminders *ReminderService
	analytics *AnalyticsService
}

// setupServices wires every service to a fresh SQLite file
func setupServices(t *testing.T, today string) (*testServices, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "monplanting-services-test-*")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	repo := database.NewRepository(db)
	v := validator.New()

	s := &testServices{repo: repo}
	s.auth = NewAuthService(repo, NewPasswordHasher(bcrypt.MinCost), v)
	s.parcels = NewParcelService(repo, v)
	s.activity = NewActivityService(repo, repo, v)
	s.reminders = NewReminderService(repo, repo, v)
	s.analytics = NewAnalyticsService(s.parcels, s.activity, s.reminders, fixedClock(today))

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}
	return s, cleanup
}

func TestEndToEnd_SeasonAnalytics(t *testing.T) {
	s, cleanup := setupServices(t, "2024-03-20")
	defer cleanup()

	account, err := s.auth.Register("farmer", "farmer@example.com", "secret1")
	require.NoError(t, err)

	parcel, err := s.parcels.Create(account.ID, models.ParcelRequest{Name: "P", Surface: 2.5})
	require.NoError(t, err)

	_, err = s.activity.Create(parcel.ID, models.CreateActivityRequest{ActivityType: "seeding", Date: "2024-03-01", Cost: floatPtr(50)})
	require.NoError(t, err)
	_, err = s.activity.Create(parcel.ID, models.CreateActivityRequest{ActivityType: "harvest", Date: "2024-03-15", Cost: floatPtr(30)})
	require.NoError(t, err)

	metrics, err := s.analytics.DashboardMetrics(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.ParcelCount)
	assert.Equal(t, 2.5, metrics.TotalSurface)
	assert.Equal(t, 2, metrics.RecentActivityCount)
	assert.Equal(t, 0, metrics.PendingReminderCount)

	breakdown, err := s.analytics.ActivityBreakdown(account.ID, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Equal(t, map[string]models.ActivityTypeStats{
		"seeding": {Count: 1, TotalCost: 50},
		"harvest": {Count: 1, TotalCost: 30},
	}, breakdown)

	series, err := s.analytics.CostOverTime(account.ID, models.ActivityFilter{}, models.BucketMonth)
	require.NoError(t, err)
	assert.Equal(t, []models.CostPoint{{Period: "2024-03", TotalCost: 80, ActivityCount: 2}}, series)

	days, err := s.analytics.CalendarView(account.ID, 2024, 3)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Len(t, days[1].Activities, 1)
	assert.Len(t, days[15].Activities, 1)

	filtered, err := s.activity.ListByParcel(parcel.ID, models.ActivityFilter{ActivityType: "harvest"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2024-03-15", filtered[0].Date)
}

func TestEndToEnd_Reminders(t *testing.T) {
	s, cleanup := setupServices(t, "2024-06-10")
	defer cleanup()

	account, err := s.auth.Register("farmer", "farmer@example.com", "secret1")
	require.NoError(t, err)
	parcel, err := s.parcels.Create(account.ID, models.ParcelRequest{Name: "North", Surface: 1})
	require.NoError(t, err)

	var ids []int64
	for _, date := range []string{"2024-06-20", "2024-06-09", "2024-06-12"} {
		r, err := s.reminders.Create(parcel.ID, models.CreateReminderRequest{ReminderDate: date, Title: "Check " + date})
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}

	pending, err := s.reminders.ListPending(account.ID)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "2024-06-09", pending[0].ReminderDate)
	assert.Equal(t, "2024-06-20", pending[2].ReminderDate)

	urgent, err := s.analytics.UrgentReminders(account.ID)
	require.NoError(t, err)
	require.Len(t, urgent, 2)
	assert.Equal(t, models.UrgencyOverdue, urgent[0].Urgency)
	assert.Equal(t, models.UrgencyUrgent, urgent[1].Urgency)
	assert.Equal(t, "North", urgent[0].ParcelName)

	require.NoError(t, s.reminders.Complete(ids[1]))
	require.NoError(t, s.reminders.Complete(ids[1]))

	pending, err = s.reminders.ListPending(account.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	days, err := s.analytics.CalendarView(account.ID, 2024, 6)
	require.NoError(t, err)
	require.Contains(t, days, 9)
	require.Len(t, days[9].Reminders, 1)
	assert.True(t, days[9].Reminders[0].IsCompleted())

	assert.ErrorIs(t, s.reminders.Complete(9999), ErrReminderNotFound)

	_, err = s.reminders.Create(9999, models.CreateReminderRequest{ReminderDate: "2024-06-12", Title: "Ghost"})
	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestEndToEnd_AccountIsolation(t *testing.T) {
	s, cleanup := setupServices(t, "2024-03-20")
	defer cleanup()

	alice, err := s.auth.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	bob, err := s.auth.Register("bob", "bob@example.com", "secret1")
	require.NoError(t, err)

	parcel, err := s.parcels.Create(alice.ID, models.ParcelRequest{Name: "Alice field", Surface: 4})
	require.NoError(t, err)
	_, err = s.activity.Create(parcel.ID, models.CreateActivityRequest{ActivityType: "seeding", Date: "2024-03-01"})
	require.NoError(t, err)

	reminder, err := s.reminders.Create(parcel.ID, models.CreateReminderRequest{ReminderDate: "2024-03-21", Title: "Water"})
	require.NoError(t, err)

	bobParcels, err := s.parcels.List(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobParcels)

	bobActivities, err := s.activity.ListByAccount(bob.ID, models.ActivityFilter{})
	require.NoError(t, err)
	assert.Empty(t, bobActivities)

	_, err = s.parcels.GetOwned(bob.ID, parcel.ID)
	assert.ErrorIs(t, err, ErrParcelNotFound)

	_, err = s.reminders.CompleteForAccount(bob.ID, reminder.ID)
	assert.ErrorIs(t, err, ErrReminderNotFound)

	metrics, err := s.analytics.DashboardMetrics(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardMetrics{}, *metrics)
}

func TestEndToEnd_Accounts(t *testing.T) {
	s, cleanup := setupServices(t, "2024-03-20")
	defer cleanup()

	_, err := s.auth.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = s.auth.Register("alice", "other@example.com", "secret1")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	_, err = s.auth.Register("alice2", "ALICE@example.com", "secret1")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	account, err := s.auth.Authenticate("alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)

	_, errUnknown := s.auth.Authenticate("nobody", "secret1")
	_, errWrong := s.auth.Authenticate("alice", "wrong-pass")
	assert.ErrorIs(t, errUnknown, ErrAuthenticationFailed)
	assert.ErrorIs(t, errWrong, ErrAuthenticationFailed)

	// Accounts migrated from the first version keep an unsalted digest.
	legacy, err := s.auth.Register("legacy", "legacy@example.com", "placeholder")
	require.NoError(t, err)
	require.NoError(t, s.repo.UpdatePasswordHash(legacy.ID, legacyDigestOf("old-secret")))

	upgraded, err := s.auth.Authenticate("legacy", "old-secret")
	require.NoError(t, err)
	assert.False(t, IsLegacyDigest(upgraded.PasswordHash))

	stored, err := s.repo.GetAccount(legacy.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("old-secret")))
}
