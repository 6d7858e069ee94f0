package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"monplanting/models"
	"monplanting/validator"
)

// RecentWindow is the look-back period of the dashboard activity count.
const RecentWindow = 30 * 24 * time.Hour

// AnalyticsService aggregates the listings of the other services for dashboards.
// It never writes.
type AnalyticsService struct {
	parcels    ParcelLister
	activities ActivityLister
	reminders  ReminderLister
	now        func() time.Time
}

// NewAnalyticsService creates a new analytics service. A nil clock means time.Now.
func NewAnalyticsService(parcels ParcelLister, activities ActivityLister, reminders ReminderLister, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{
		parcels:    parcels,
		activities: activities,
		reminders:  reminders,
		now:        now,
	}
}

// DashboardMetrics computes the headline figures of an account
func (as *AnalyticsService) DashboardMetrics(accountID int64) (*models.DashboardMetrics, error) {
	parcels, err := as.parcels.List(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}

	today := civilDate(as.now())
	recent, err := as.activities.ListByAccount(accountID, models.ActivityFilter{
		DateFrom: today.Add(-RecentWindow).Format(models.DateLayout),
		DateTo:   today.Format(models.DateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}

	pending, err := as.reminders.ListPending(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}

	metrics := &models.DashboardMetrics{
		ParcelCount:          len(parcels),
		RecentActivityCount:  len(recent),
		PendingReminderCount: len(pending),
	}
	for _, p := range parcels {
		metrics.TotalSurface += p.Surface
	}
	return metrics, nil
}

// ActivityBreakdown groups the filtered activities by type
func (as *AnalyticsService) ActivityBreakdown(accountID int64, filter models.ActivityFilter) (map[string]models.ActivityTypeStats, error) {
	activities, err := as.activities.ListByAccount(accountID, filter)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]models.ActivityTypeStats)
	for _, a := range activities {
		stats := breakdown[a.ActivityType]
		stats.Count++
		stats.TotalCost += a.Cost
		breakdown[a.ActivityType] = stats
	}
	return breakdown, nil
}

// CostOverTime sums activity costs per calendar bucket. Periods without
// activity are omitted; the series is sorted by period.
func (as *AnalyticsService) CostOverTime(accountID int64, filter models.ActivityFilter, bucket models.Bucket) ([]models.CostPoint, error) {
	if bucket == "" {
		bucket = models.BucketMonth
	}
	if _, err := periodKey(time.Time{}, bucket); err != nil {
		return nil, err
	}

	activities, err := as.activities.ListByAccount(accountID, filter)
	if err != nil {
		return nil, err
	}

	points := make(map[string]*models.CostPoint)
	for _, a := range activities {
		date, err := time.Parse(models.DateLayout, a.Date)
		if err != nil {
			return nil, fmt.Errorf("activity %d has malformed date %q: %w", a.ID, a.Date, err)
		}
		key, _ := periodKey(date, bucket)

		point, ok := points[key]
		if !ok {
			point = &models.CostPoint{Period: key}
			points[key] = point
		}
		point.TotalCost += a.Cost
		point.ActivityCount++
	}

	series := make([]models.CostPoint, 0, len(points))
	for _, p := range points {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Period < series[j].Period })
	return series, nil
}

func periodKey(date time.Time, bucket models.Bucket) (string, error) {
	switch bucket {
	case models.BucketDay:
		return date.Format(models.DateLayout), nil
	case models.BucketWeek:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), nil
	case models.BucketMonth:
		return date.Format("2006-01"), nil
	case models.BucketYear:
		return date.Format("2006"), nil
	default:
		return "", validator.Invalid("bucket", "oneof", "must be one of day, week, month, year")
	}
}

// CalendarView lays out a month's activities and reminders by day of month.
// Days with nothing scheduled are absent from the map.
func (as *AnalyticsService) CalendarView(accountID int64, year, month int) (map[int]*models.CalendarDay, error) {
	if month < 1 || month > 12 {
		return nil, validator.Invalid("month", "range", "must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return nil, validator.Invalid("year", "range", "must be between 1 and 9999")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	from, to := first.Format(models.DateLayout), last.Format(models.DateLayout)

	activities, err := as.activities.ListByAccount(accountID, models.ActivityFilter{DateFrom: from, DateTo: to})
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	reminders, err := as.reminders.ListInRange(accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	days := make(map[int]*models.CalendarDay)
	dayOf := func(date string) (*models.CalendarDay, error) {
		d, err := time.Parse(models.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("malformed date %q: %w", date, err)
		}
		cell, ok := days[d.Day()]
		if !ok {
			cell = &models.CalendarDay{
				Activities: []models.Activity{},
				Reminders:  []models.Reminder{},
			}
			days[d.Day()] = cell
		}
		return cell, nil
	}

	for _, a := range activities {
		cell, err := dayOf(a.Date)
		if err != nil {
			return nil, err
		}
		cell.Activities = append(cell.Activities, a)
	}
	for _, r := range reminders {
		cell, err := dayOf(r.ReminderDate)
		if err != nil {
			return nil, err
		}
		cell.Reminders = append(cell.Reminders, r)
	}
	return days, nil
}

// ParcelBreakdown counts the filtered activities and their cost per parcel,
// busiest parcel first. Parcels without matching activity are left out.
func (as *AnalyticsService) ParcelBreakdown(accountID int64, filter models.ActivityFilter) ([]models.ParcelStats, error) {
	parcels, err := as.parcels.List(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	activities, err := as.activities.ListByAccount(accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	names := make(map[int64]string, len(parcels))
	for _, p := range parcels {
		names[p.ID] = p.Name
	}

	byParcel := make(map[int64]*models.ParcelStats)
	for _, a := range activities {
		stats, ok := byParcel[a.ParcelID]
		if !ok {
			stats = &models.ParcelStats{ParcelID: a.ParcelID, ParcelName: names[a.ParcelID]}
			byParcel[a.ParcelID] = stats
		}
		stats.ActivityCount++
		stats.TotalCost += a.Cost
	}

	result := make([]models.ParcelStats, 0, len(byParcel))
	for _, s := range byParcel {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ActivityCount != result[j].ActivityCount {
			return result[i].ActivityCount > result[j].ActivityCount
		}
		return result[i].ParcelID < result[j].ParcelID
	})
	return result, nil
}

// Summary reports totals over the filtered activities. Ties for the most
// common type go to the alphabetically first type.
func (as *AnalyticsService) Summary(accountID int64, filter models.ActivityFilter) (*models.ActivitySummary, error) {
	breakdown, err := as.ActivityBreakdown(accountID, filter)
	if err != nil {
		return nil, err
	}

	summary := &models.ActivitySummary{}
	best := 0
	for activityType, stats := range breakdown {
		summary.TotalActivities += stats.Count
		summary.TotalCost += stats.TotalCost
		if stats.Count > best || (stats.Count == best && activityType < summary.MostCommonType) {
			best = stats.Count
			summary.MostCommonType = activityType
		}
	}
	if summary.TotalActivities > 0 {
		summary.AverageCost = summary.TotalCost / float64(summary.TotalActivities)
	}
	return summary, nil
}

// UrgentReminders lists the pending reminders that are overdue or due within
// the urgent window, soonest first.
func (as *AnalyticsService) UrgentReminders(accountID int64) ([]models.ReminderAlert, error) {
	pending, err := as.reminders.ListPending(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}
	alerts, err := as.Alerts(accountID, pending)
	if err != nil {
		return nil, err
	}

	urgent := make([]models.ReminderAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Urgency != models.UrgencyUpcoming {
			urgent = append(urgent, a)
		}
	}
	return urgent, nil
}

// Alerts annotates reminders with their parcel name, urgency and days left
func (as *AnalyticsService) Alerts(accountID int64, reminders []models.Reminder) ([]models.ReminderAlert, error) {
	parcels, err := as.parcels.List(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	names := make(map[int64]string, len(parcels))
	for _, p := range parcels {
		names[p.ID] = p.Name
	}

	today := as.now()
	alerts := make([]models.ReminderAlert, 0, len(reminders))
	for _, r := range reminders {
		date, err := time.Parse(models.DateLayout, r.ReminderDate)
		if err != nil {
			return nil, fmt.Errorf("reminder %d has malformed date %q: %w", r.ID, r.ReminderDate, err)
		}
		alerts = append(alerts, models.ReminderAlert{
			Reminder:   r,
			ParcelName: names[r.ParcelID],
			Urgency:    Classify(date, today),
			DaysLeft:   DaysUntil(date, today),
		})
	}
	return alerts, nil
}

// ParseYearMonth converts path parameters of the calendar view
func ParseYearMonth(year, month string) (int, int, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, 0, validator.Invalid("year", "number", "must be a number")
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return 0, 0, validator.Invalid("month", "number", "must be a number")
	}
	return y, m, nil
}
