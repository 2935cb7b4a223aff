package students

import (
	"github.com/gofiber/fiber/v2"

	"sala-admin/app/config"
	"sala-admin/app/models"
	"sala-admin/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	studentsAPI := app.Group("/api/students")
	studentsAPI.Use(auth.AuthMiddleware)

	// Web routes
	students.Get("/", func(c *fiber.Ctx) error {
		return c.Render("students/index", fiber.Map{
			"Title":       "Students - Sala Admin",
			"CurrentPage": "students",
		})
	})

	students.Get("/register", func(c *fiber.Ctx) error {
		return c.Render("students/register", fiber.Map{
			"Title":       "Register Student - Sala Admin",
			"CurrentPage": "students",
		})
	})

	// API routes
	studentsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsTableAPI(c, config.GetDB())
	})

	studentsAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetStudentsStatsAPI(c, config.GetDB())
	})

	studentsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})

	studentsAPI.Post("/import", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return ImportStudentsAPI(c, config.GetDB())
	})

	studentsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentByIDAPI(c, config.GetDB())
	})

	studentsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})

	studentsAPI.Delete("/:id", auth.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, config.GetDB())
	})

	studentsAPI.Post("/:id/active", func(c *fiber.Ctx) error {
		return SetStudentActiveAPI(c, config.GetDB())
	})
}
