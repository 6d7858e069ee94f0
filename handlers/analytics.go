package handlers

import (
	"monplanting/app"
	"monplanting/middleware"
	"monplanting/models"
	"monplanting/services"

	"github.com/gofiber/fiber/v2"
)

func GetDashboard(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metrics, err := a.AnalyticsService.DashboardMetrics(middleware.GetAccountID(c))
		if err != nil {
			return respondError(a, c, "Failed to compute dashboard", err)
		}
		return success(c, fiber.Map{"metrics": metrics})
	}
}

func GetBreakdown(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		breakdown, err := a.AnalyticsService.ActivityBreakdown(middleware.GetAccountID(c), filter)
		if err != nil {
			return respondError(a, c, "Failed to compute breakdown", err)
		}
		return success(c, fiber.Map{"breakdown": breakdown})
	}
}

// GetCosts returns the cost series; ?bucket=day|week|month|year, month by default
func GetCosts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}
		bucket := models.Bucket(c.Query("bucket"))

		series, err := a.AnalyticsService.CostOverTime(middleware.GetAccountID(c), filter, bucket)
		if err != nil {
			return respondError(a, c, "Failed to compute costs", err)
		}
		return success(c, fiber.Map{"costs": series})
	}
}

func GetParcelStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		stats, err := a.AnalyticsService.ParcelBreakdown(middleware.GetAccountID(c), filter)
		if err != nil {
			return respondError(a, c, "Failed to compute parcel statistics", err)
		}
		return success(c, fiber.Map{"parcels": stats})
	}
}

func GetSummary(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		summary, err := a.AnalyticsService.Summary(middleware.GetAccountID(c), filter)
		if err != nil {
			return respondError(a, c, "Failed to compute summary", err)
		}
		return success(c, fiber.Map{"summary": summary})
	}
}

func GetUrgentReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alerts, err := a.AnalyticsService.UrgentReminders(middleware.GetAccountID(c))
		if err != nil {
			return respondError(a, c, "Failed to fetch urgent reminders", err)
		}
		return success(c, fiber.Map{"reminders": alerts})
	}
}

// GetCalendar returns /api/calendar/:year/:month keyed by day of month
func GetCalendar(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := services.ParseYearMonth(c.Params("year"), c.Params("month"))
		if err != nil {
			return validationError(c, err)
		}

		days, err := a.AnalyticsService.CalendarView(middleware.GetAccountID(c), year, month)
		if err != nil {
			return respondError(a, c, "Failed to build calendar", err)
		}
		return success(c, fiber.Map{"year": year, "month": month, "days": days})
	}
}
