package services

import (
	"errors"
	"strings"
	"time"

	"monplanting/database"
	"monplanting/models"
	"monplanting/validator"
)

// ParcelService handles business logic for parcels
type ParcelService struct {
	repo      ParcelRepository
	validator *validator.Validator
}

// NewParcelService creates a new parcel service
func NewParcelService(repo ParcelRepository, v *validator.Validator) *ParcelService {
	return &ParcelService{
		repo:      repo,
		validator: v,
	}
}

func normalizeParcel(req models.ParcelRequest) models.ParcelRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	req.SoilType = strings.TrimSpace(req.SoilType)
	req.Description = strings.TrimSpace(req.Description)
	return req
}

// Create registers a parcel for an account
func (ps *ParcelService) Create(accountID int64, req models.ParcelRequest) (*models.Parcel, error) {
	req = normalizeParcel(req)
	if err := ps.validator.Validate(req); err != nil {
		return nil, err
	}

	parcel := &models.Parcel{
		AccountID:   accountID,
		Name:        req.Name,
		Surface:     req.Surface,
		Location:    req.Location,
		SoilType:    req.SoilType,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := ps.repo.CreateParcel(parcel); err != nil {
		if errors.Is(err, database.ErrAccountMissing) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return parcel, nil
}

// List retrieves all parcels of an account, most recent first
func (ps *ParcelService) List(accountID int64) ([]models.Parcel, error) {
	return ps.repo.GetParcelsByAccount(accountID)
}

// Get retrieves a parcel by ID
func (ps *ParcelService) Get(parcelID int64) (*models.Parcel, error) {
	parcel, err := ps.repo.GetParcel(parcelID)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrParcelNotFound
	}
	return parcel, nil
}

// GetOwned retrieves a parcel only if accountID owns it. A parcel of another
// account is reported as not found.
func (ps *ParcelService) GetOwned(accountID, parcelID int64) (*models.Parcel, error) {
	parcel, err := ps.Get(parcelID)
	if err != nil {
		return nil, err
	}
	if parcel.AccountID != accountID {
		return nil, ErrParcelNotFound
	}
	return parcel, nil
}

// Update rewrites the editable fields of an owned parcel
func (ps *ParcelService) Update(accountID, parcelID int64, req models.ParcelRequest) (*models.Parcel, error) {
	req = normalizeParcel(req)
	if err := ps.validator.Validate(req); err != nil {
		return nil, err
	}

	parcel, err := ps.GetOwned(accountID, parcelID)
	if err != nil {
		return nil, err
	}

	parcel.Name = req.Name
	parcel.Surface = req.Surface
	parcel.Location = req.Location
	parcel.SoilType = req.SoilType
	parcel.Description = req.Description

	if err := ps.repo.UpdateParcel(parcel); err != nil {
		if errors.Is(err, database.ErrParcelMissing) {
			return nil, ErrParcelNotFound
		}
		return nil, err
	}

	return parcel, nil
}
