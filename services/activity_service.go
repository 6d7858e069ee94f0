package services

import (
	"errors"
	"strings"
	"time"

	"monplanting/database"
	"monplanting/models"
	"monplanting/validator"
)

// ActivityService handles business logic for logged field activities
type ActivityService struct {
	repo      ActivityRepository
	parcels   ParcelRepository
	validator *validator.Validator
}

// NewActivityService creates a new activity service
func NewActivityService(repo ActivityRepository, parcels ParcelRepository, v *validator.Validator) *ActivityService {
	return &ActivityService{
		repo:      repo,
		parcels:   parcels,
		validator: v,
	}
}

// Create logs an activity on a parcel. A missing cost is recorded as zero.
func (as *ActivityService) Create(parcelID int64, req models.CreateActivityRequest) (*models.Activity, error) {
	req.ActivityType = strings.TrimSpace(req.ActivityType)
	req.Date = strings.TrimSpace(req.Date)
	if err := as.validator.Validate(req); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		ParcelID:          parcelID,
		ActivityType:      req.ActivityType,
		Date:              req.Date,
		CropType:          strings.TrimSpace(req.CropType),
		Variety:           strings.TrimSpace(req.Variety),
		Quantity:          req.Quantity,
		Unit:              strings.TrimSpace(req.Unit),
		Notes:             strings.TrimSpace(req.Notes),
		WeatherConditions: strings.TrimSpace(req.WeatherConditions),
		CreatedAt:         time.Now().UTC(),
	}
	if req.Cost != nil {
		activity.Cost = *req.Cost
	}

	if err := as.repo.CreateActivity(activity); err != nil {
		if errors.Is(err, database.ErrParcelMissing) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	return activity, nil
}

// Get retrieves an activity by ID
func (as *ActivityService) Get(activityID int64) (*models.Activity, error) {
	activity, err := as.repo.GetActivity(activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// ListByParcel retrieves the filtered activities of a parcel, latest first
func (as *ActivityService) ListByParcel(parcelID int64, filter models.ActivityFilter) ([]models.Activity, error) {
	if err := as.validator.Validate(filter); err != nil {
		return nil, err
	}

	parcel, err := as.parcels.GetParcel(parcelID)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrParcelNotFound
	}

	return as.repo.GetActivitiesByParcel(parcelID, filter)
}

// ListByAccount retrieves the filtered activities across all parcels of an account
func (as *ActivityService) ListByAccount(accountID int64, filter models.ActivityFilter) ([]models.Activity, error) {
	if err := as.validator.Validate(filter); err != nil {
		return nil, err
	}
	return as.repo.GetActivitiesByAccount(accountID, filter)
}
