package handlers

import (
	"monplanting/app"
	"monplanting/middleware"
	"monplanting/models"

	"github.com/gofiber/fiber/v2"
)

func parseFilter(c *fiber.Ctx) (models.ActivityFilter, error) {
	var filter models.ActivityFilter
	err := c.QueryParser(&filter)
	return filter, err
}

// GetParcelActivities lists a parcel's activities, latest first
func GetParcelActivities(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcel, err := ownedParcel(a, c)
		if parcel == nil {
			return err
		}

		filter, err := parseFilter(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		activities, err := a.ActivityService.ListByParcel(parcel.ID, filter)
		if err != nil {
			return respondError(a, c, "Failed to fetch activities", err)
		}
		return success(c, fiber.Map{"activities": activities})
	}
}

func CreateActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcel, err := ownedParcel(a, c)
		if parcel == nil {
			return err
		}

		var req models.CreateActivityRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		activity, err := a.ActivityService.Create(parcel.ID, req)
		if err != nil {
			return respondError(a, c, "Failed to create activity", err)
		}
		return created(c, fiber.Map{"activity": activity})
	}
}

// GetActivities lists activities across all parcels of the current account
func GetActivities(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		activities, err := a.ActivityService.ListByAccount(middleware.GetAccountID(c), filter)
		if err != nil {
			return respondError(a, c, "Failed to fetch activities", err)
		}
		return success(c, fiber.Map{"activities": activities})
	}
}
