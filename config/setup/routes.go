package setup

import (
	"strconv"
	"time"

	"monplanting/app"
	"monplanting/handlers"
	"monplanting/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// Auth routes
	auth := fiberApp.Group("/api/auth")
	auth.Post("/register", handlers.Register(application))
	auth.Post("/login", handlers.Login(application))
	auth.Post("/logout", handlers.Logout(application))
	auth.Get("/me", middleware.AuthRequired(application.SessionStore), handlers.Me(application))

	// Protected API routes
	api := fiberApp.Group("/api", middleware.AuthRequired(application.SessionStore), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if accountID := middleware.GetAccountID(c); accountID != 0 {
				return "account:" + strconv.FormatInt(accountID, 10)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	api.Get("/parcels", handlers.GetParcels(application))
	api.Post("/parcels", handlers.CreateParcel(application))
	api.Get("/parcels/:id", handlers.GetParcel(application))
	api.Put("/parcels/:id", handlers.UpdateParcel(application))
	api.Get("/parcels/:id/activities", handlers.GetParcelActivities(application))
	api.Post("/parcels/:id/activities", handlers.CreateActivity(application))
	api.Get("/parcels/:id/reminders", handlers.GetParcelReminders(application))
	api.Post("/parcels/:id/reminders", handlers.CreateReminder(application))

	api.Get("/activities", handlers.GetActivities(application))

	api.Get("/reminders/pending", handlers.GetPendingReminders(application))
	api.Post("/reminders/:id/complete", handlers.CompleteReminder(application))

	api.Get("/analytics/dashboard", handlers.GetDashboard(application))
	api.Get("/analytics/breakdown", handlers.GetBreakdown(application))
	api.Get("/analytics/costs", handlers.GetCosts(application))
	api.Get("/analytics/parcels", handlers.GetParcelStats(application))
	api.Get("/analytics/summary", handlers.GetSummary(application))
	api.Get("/analytics/urgent", handlers.GetUrgentReminders(application))
	api.Get("/calendar/:year/:month", handlers.GetCalendar(application))

	api.Get("/export/activities.xlsx", handlers.ExportActivities(application))
}
