package handlers

import (
	"monplanting/app"
	"monplanting/middleware"
	"monplanting/models"

	"github.com/gofiber/fiber/v2"
)

func GetParcelReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcel, err := ownedParcel(a, c)
		if parcel == nil {
			return err
		}

		reminders, err := a.ReminderService.ListByParcel(parcel.ID)
		if err != nil {
			return respondError(a, c, "Failed to fetch reminders", err)
		}
		return success(c, fiber.Map{"reminders": reminders})
	}
}

func CreateReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parcel, err := ownedParcel(a, c)
		if parcel == nil {
			return err
		}

		var req models.CreateReminderRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		reminder, err := a.ReminderService.Create(parcel.ID, req)
		if err != nil {
			return respondError(a, c, "Failed to create reminder", err)
		}
		return created(c, fiber.Map{"reminder": reminder})
	}
}

// GetPendingReminders lists pending reminders with their urgency
func GetPendingReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID := middleware.GetAccountID(c)

		pending, err := a.ReminderService.ListPending(accountID)
		if err != nil {
			return respondError(a, c, "Failed to fetch reminders", err)
		}

		alerts, err := a.AnalyticsService.Alerts(accountID, pending)
		if err != nil {
			return respondError(a, c, "Failed to fetch reminders", err)
		}
		return success(c, fiber.Map{"reminders": alerts})
	}
}

func CompleteReminder(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reminderID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "invalid reminder id")
		}

		reminder, err := a.ReminderService.CompleteForAccount(middleware.GetAccountID(c), reminderID)
		if err != nil {
			return respondError(a, c, "Failed to complete reminder", err)
		}
		return success(c, fiber.Map{"reminder": reminder})
	}
}
