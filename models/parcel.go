package models

import "time"

type Parcel struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	Name        string    `json:"name"`
	Surface     float64   `json:"surface"`
	Location    string    `json:"location"`
	SoilType    string    `json:"soil_type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ParcelRequest carries the editable fields of a parcel, for both creation and update.
type ParcelRequest struct {
	Name        string  `json:"name" validate:"notblank,max=100"`
	Surface     float64 `json:"surface" validate:"gt=0"`
	Location    string  `json:"location" validate:"max=200"`
	SoilType    string  `json:"soil_type" validate:"max=50"`
	Description string  `json:"description" validate:"max=2000"`
}

// SoilTypes lists the soil classes offered when registering a parcel.
var SoilTypes = []string{
	"clay", "silt", "sand", "clay-loam", "sandy-clay", "sandy-loam", "other",
}
