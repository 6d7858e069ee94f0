package models

import (
	"strings"
	"time"
)

// DateLayout is the storage and wire format of activity and reminder dates.
const DateLayout = "2006-01-02"

// FilterAll disables a string filter, like leaving it empty.
const FilterAll = "all"

// ActivityTypes are the activity kinds suggested to users. Other values are accepted.
var ActivityTypes = []string{
	"seeding", "planting", "watering", "fertilizing", "treatment", "weeding",
	"harvest", "harvesting", "plowing", "hoeing", "inspection", "other",
}

// Units are the quantity units suggested to users.
var Units = []string{"kg", "g", "L", "mL", "pieces", "m2", "ha"}

type Activity struct {
	ID                int64     `json:"id"`
	ParcelID          int64     `json:"parcel_id"`
	ActivityType      string    `json:"activity_type"`
	Date              string    `json:"date"`
	CropType          string    `json:"crop_type"`
	Variety           string    `json:"variety"`
	Quantity          *float64  `json:"quantity,omitempty"`
	Unit              string    `json:"unit"`
	Notes             string    `json:"notes"`
	Cost              float64   `json:"cost"`
	WeatherConditions string    `json:"weather_conditions"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateActivityRequest struct {
	ActivityType      string   `json:"activity_type" validate:"notblank,max=50"`
	Date              string   `json:"date" validate:"required,isodate"`
	CropType          string   `json:"crop_type" validate:"max=100"`
	Variety           string   `json:"variety" validate:"max=100"`
	Quantity          *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit              string   `json:"unit" validate:"max=20"`
	Notes             string   `json:"notes" validate:"max=2000"`
	Cost              *float64 `json:"cost" validate:"omitempty,gte=0"`
	WeatherConditions string   `json:"weather_conditions" validate:"max=50"`
}

// ActivityFilter narrows an activity listing. Empty fields and "all" impose no
// restriction; set fields combine with AND. Date bounds are inclusive.
type ActivityFilter struct {
	ActivityType string `json:"activity_type" query:"activity_type"`
	CropType     string `json:"crop_type" query:"crop_type"`
	DateFrom     string `json:"date_from" query:"date_from" validate:"omitempty,isodate"`
	DateTo       string `json:"date_to" query:"date_to" validate:"omitempty,isodate"`
}

// Restricts reports whether a filter value narrows the result.
func Restricts(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && !strings.EqualFold(value, FilterAll)
}
