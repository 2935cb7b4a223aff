package reports

import (
	"github.com/gofiber/fiber/v2"

	"sala-admin/app/config"
	"sala-admin/app/routes/auth"
)

// SetupReportsRoutes sets up the export routes
func SetupReportsRoutes(app *fiber.App) {
	reportsAPI := app.Group("/api/reports")
	reportsAPI.Use(auth.AuthMiddleware)

	reportsAPI.Get("/students.csv", func(c *fiber.Ctx) error {
		return ExportStudentsCSVAPI(c, config.GetDB())
	})
}
