package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"sala-admin/app/config"
	"sala-admin/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)

	dashboardAPI := app.Group("/api/dashboard")
	dashboardAPI.Use(auth.AuthMiddleware)

	dashboard.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Dashboard - Sala Admin",
			"CurrentPage": "dashboard",
		})
	})

	dashboardAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, config.GetDB())
	})
}
