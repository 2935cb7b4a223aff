package inventory

import (
	"github.com/gofiber/fiber/v2"

	"sala-admin/app/config"
	"sala-admin/app/models"
	"sala-admin/app/routes/auth"
)

// SetupInventoryRoutes sets up the inventory routes
func SetupInventoryRoutes(app *fiber.App) {
	inventory := app.Group("/inventory")
	inventory.Use(auth.AuthMiddleware)

	inventoryAPI := app.Group("/api/inventory")
	inventoryAPI.Use(auth.AuthMiddleware)

	// Web routes
	inventory.Get("/", func(c *fiber.Ctx) error {
		return c.Render("inventory/index", fiber.Map{
			"Title":       "Inventory - Sala Admin",
			"CurrentPage": "inventory",
		})
	})

	// API routes
	inventoryAPI.Get("/items", func(c *fiber.Ctx) error {
		return GetItemsAPI(c, config.GetDB())
	})

	inventoryAPI.Post("/items", func(c *fiber.Ctx) error {
		return CreateItemAPI(c, config.GetDB())
	})

	inventoryAPI.Put("/items/:id", func(c *fiber.Ctx) error {
		return UpdateItemAPI(c, config.GetDB())
	})

	inventoryAPI.Delete("/items/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteItemAPI(c, config.GetDB())
	})

	inventoryAPI.Post("/sales", func(c *fiber.Ctx) error {
		return RecordSaleAPI(c, config.GetDB())
	})

	inventoryAPI.Get("/sales", func(c *fiber.Ctx) error {
		return GetSalesAPI(c, config.GetDB())
	})

	inventoryAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetInventoryStatsAPI(c, config.GetDB())
	})
}
