package models

type DashboardMetrics struct {
	ParcelCount          int     `json:"parcel_count"`
	TotalSurface         float64 `json:"total_surface"`
	RecentActivityCount  int     `json:"activity_count_last_30_days"`
	PendingReminderCount int     `json:"pending_reminder_count"`
}

type ActivityTypeStats struct {
	Count     int     `json:"count"`
	TotalCost float64 `json:"cost"`
}

// Bucket is a calendar period used to group activities over time.
type Bucket string

const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
	BucketYear  Bucket = "year"
)

type CostPoint struct {
	Period        string  `json:"period"`
	TotalCost     float64 `json:"total_cost"`
	ActivityCount int     `json:"activity_count"`
}

type CalendarDay struct {
	Activities []Activity `json:"activities"`
	Reminders  []Reminder `json:"reminders"`
}

type ParcelStats struct {
	ParcelID      int64   `json:"parcel_id"`
	ParcelName    string  `json:"parcel_name"`
	ActivityCount int     `json:"activity_count"`
	TotalCost     float64 `json:"total_cost"`
}

type ActivitySummary struct {
	TotalActivities int     `json:"total_activities"`
	TotalCost       float64 `json:"total_cost"`
	AverageCost     float64 `json:"average_cost"`
	MostCommonType  string  `json:"most_common_type"`
}
