package users

import (
	"github.com/gofiber/fiber/v2"

	"sala-admin/app/config"
	"sala-admin/app/models"
	"sala-admin/app/routes/auth"
)

// SetupUsersRoutes sets up the user management routes. Everything here is
// admin-only.
func SetupUsersRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Use(auth.AuthMiddleware)
	users.Use(auth.RequireRole(models.RoleAdmin))

	usersAPI := app.Group("/api/users")
	usersAPI.Use(auth.AuthMiddleware)
	usersAPI.Use(auth.RequireRole(models.RoleAdmin))

	// Web routes
	users.Get("/", func(c *fiber.Ctx) error {
		return c.Render("users/index", fiber.Map{
			"Title":       "Users - Sala Admin",
			"CurrentPage": "users",
		})
	})

	// API routes
	usersAPI.Get("/", func(c *fiber.Ctx) error {
		return GetUsersAPI(c, config.GetDB())
	})

	usersAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateUserAPI(c, config.GetDB())
	})

	usersAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateUserAPI(c, config.GetDB())
	})

	usersAPI.Post("/:id/active", func(c *fiber.Ctx) error {
		return SetUserActiveAPI(c, config.GetDB())
	})

	usersAPI.Put("/:id/roles", func(c *fiber.Ctx) error {
		return SetUserRolesAPI(c, config.GetDB())
	})

	usersAPI.Get("/roles", func(c *fiber.Ctx) error {
		return GetRolesAPI(c, config.GetDB())
	})
}
