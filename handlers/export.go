package handlers

import (
	"fmt"
	"time"

	"monplanting/app"
	"monplanting/export"
	"monplanting/middleware"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportActivities downloads the filtered activity journal as a workbook
func ExportActivities(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c)
		if err != nil {
			return badRequest(c, "Invalid query parameters")
		}
		accountID := middleware.GetAccountID(c)

		parcels, err := a.ParcelService.List(accountID)
		if err != nil {
			return respondError(a, c, "Failed to export activities", err)
		}
		activities, err := a.ActivityService.ListByAccount(accountID, filter)
		if err != nil {
			return respondError(a, c, "Failed to export activities", err)
		}

		data, err := export.ActivitiesWorkbook(parcels, activities)
		if err != nil {
			return respondError(a, c, "Failed to export activities", err)
		}

		filename := fmt.Sprintf("activities-%s.xlsx", time.Now().Format("20060102"))
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(data)
	}
}
