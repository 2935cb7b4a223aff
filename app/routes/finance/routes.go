package finance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sala-admin/app/models"
	"sala-admin/app/routes/auth"
)

// SetupFinanceRoutes sets up the income/expense routes
func SetupFinanceRoutes(app *fiber.App, db *sql.DB) {
	finance := app.Group("/finance")
	finance.Use(auth.AuthMiddleware)

	financeAPI := app.Group("/api/finance")
	financeAPI.Use(auth.AuthMiddleware)
	financeAPI.Use(auth.RequireRole(models.RoleAdmin, models.RoleAccountant))

	// Web routes
	finance.Get("/", func(c *fiber.Ctx) error {
		return c.Render("finance/index", fiber.Map{
			"Title":       "Finance - Sala Admin",
			"CurrentPage": "finance",
		})
	})

	// API routes
	financeAPI.Get("/categories", func(c *fiber.Ctx) error {
		return GetCategoriesAPI(c, db)
	})

	financeAPI.Post("/categories", func(c *fiber.Ctx) error {
		return CreateCategoryAPI(c, db)
	})

	financeAPI.Get("/transactions", func(c *fiber.Ctx) error {
		return GetTransactionsAPI(c, db)
	})

	financeAPI.Post("/transactions", func(c *fiber.Ctx) error {
		return CreateTransactionAPI(c, db)
	})

	financeAPI.Put("/transactions/:id", func(c *fiber.Ctx) error {
		return UpdateTransactionAPI(c, db)
	})

	financeAPI.Delete("/transactions/:id", func(c *fiber.Ctx) error {
		return DeleteTransactionAPI(c, db)
	})

	financeAPI.Get("/summary", func(c *fiber.Ctx) error {
		return GetMonthlySummaryAPI(c, db)
	})
}
