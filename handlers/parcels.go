package handlers

import (
	"monplanting/app"
	"monplanting/middleware"
	"monplanting/models"

	"github.com/gofiber/fiber/v2"
)

// GetParcels lists the parcels of the current account
func GetParcels(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcels, err := a.ParcelService.List(middleware.GetAccountID(c))
		if err != nil {
			return respondError(a, c, "Failed to fetch parcels", err)
		}
		return success(c, fiber.Map{"parcels": parcels})
	}
}

func CreateParcel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ParcelRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		parcel, err := a.ParcelService.Create(middleware.GetAccountID(c), req)
		if err != nil {
			return respondError(a, c, "Failed to create parcel", err)
		}
		return created(c, fiber.Map{"parcel": parcel})
	}
}

func GetParcel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcelID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "invalid parcel id")
		}

		parcel, err := a.ParcelService.GetOwned(middleware.GetAccountID(c), parcelID)
		if err != nil {
			return respondError(a, c, "Failed to fetch parcel", err)
		}
		return success(c, fiber.Map{"parcel": parcel})
	}
}

func UpdateParcel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcelID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "invalid parcel id")
		}

		var req models.ParcelRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		parcel, err := a.ParcelService.Update(middleware.GetAccountID(c), parcelID, req)
		if err != nil {
			return respondError(a, c, "Failed to update parcel", err)
		}
		return success(c, fiber.Map{"parcel": parcel})
	}
}

// ownedParcel resolves the :id parameter to a parcel of the current account.
// On a nil parcel the error response is already written and the caller
// returns the second value as is.
func ownedParcel(a *app.App, c *fiber.Ctx) (*models.Parcel, error) {
	parcelID, ok := paramID(c, "id")
	if !ok {
		return nil, badRequest(c, "invalid parcel id")
	}

	parcel, err := a.ParcelService.GetOwned(middleware.GetAccountID(c), parcelID)
	if err != nil {
		return nil, respondError(a, c, "Failed to fetch parcel", err)
	}
	return parcel, nil
}
