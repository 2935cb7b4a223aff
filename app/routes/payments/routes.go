package payments

import (
	"github.com/gofiber/fiber/v2"

	"sala-admin/app/config"
	"sala-admin/app/models"
	"sala-admin/app/routes/auth"
)

// SetupPaymentsRoutes sets up the payments routes
func SetupPaymentsRoutes(app *fiber.App) {
	payments := app.Group("/payments")
	payments.Use(auth.AuthMiddleware)

	paymentsAPI := app.Group("/api/payments")
	paymentsAPI.Use(auth.AuthMiddleware)

	// Web routes
	payments.Get("/", func(c *fiber.Ctx) error {
		return c.Render("payments/index", fiber.Map{
			"Title":       "Payments - Sala Admin",
			"CurrentPage": "payments",
		})
	})

	// API routes
	paymentsAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetPaymentStatsAPI(c, config.GetDB())
	})

	paymentsAPI.Get("/recent", func(c *fiber.Ctx) error {
		return RecentPaymentsAPI(c, config.GetDB())
	})

	paymentsAPI.Get("/students/:id/installments", func(c *fiber.Ctx) error {
		return GetStudentInstallmentsAPI(c, config.GetDB())
	})

	paymentsAPI.Post("/students/:id/installments", func(c *fiber.Ctx) error {
		return AddInstallmentAPI(c, config.GetDB())
	})

	paymentsAPI.Post("/students/:id/pay", func(c *fiber.Ctx) error {
		return MarkStudentPaidAPI(c, config.GetDB())
	})

	paymentsAPI.Delete("/installments/:installmentId", auth.RequireRole(models.RoleAdmin, models.RoleAccountant), func(c *fiber.Ctx) error {
		return DeleteInstallmentAPI(c, config.GetDB())
	})
}
