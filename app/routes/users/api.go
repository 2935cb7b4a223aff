package users

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sala-admin/app/database"
	"sala-admin/app/models"
	"sala-admin/app/routes/auth"
)

// GetUsersAPI lists all users with their roles.
func GetUsersAPI(c *fiber.Ctx, db *sql.DB) error {
	users, err := database.ListUsers(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    users,
	})
}

// CreateUserAPI creates a staff account and assigns its roles.
func CreateUserAPI(c *fiber.Ctx, db *sql.DB) error {
	type createRequest struct {
		Email     string   `json:"email"`
		Password  string   `json:"password"`
		FirstName string   `json:"first_name"`
		LastName  string   `json:"last_name"`
		Phone     string   `json:"phone"`
		RoleIDs   []string `json:"role_ids"`
	}
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if len(req.Password) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := database.CreateUser(db, &user); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Email already in use")
	}

	if len(req.RoleIDs) > 0 {
		if err := database.SetUserRoles(db, user.ID, req.RoleIDs); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign roles")
		}
	}
	user.Password = ""

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    user,
		"message": "User created successfully",
	})
}

// UpdateUserAPI updates user identity fields.
func UpdateUserAPI(c *fiber.Ctx, db *sql.DB) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	user.ID = c.Params("id")

	if err := database.UpdateUser(db, &user); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
	})
}

// SetUserActiveAPI enables or disables a user account.
func SetUserActiveAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		IsActive bool `json:"is_active"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	// A user cannot lock themselves out.
	if userID, ok := c.Locals("user_id").(string); ok && userID == c.Params("id") && !req.IsActive {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot deactivate your own account")
	}

	if err := database.SetUserActive(db, c.Params("id"), req.IsActive); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User status updated",
	})
}

// SetUserRolesAPI replaces a user's role assignments.
func SetUserRolesAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		RoleIDs []string `json:"role_ids"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := database.SetUserRoles(db, c.Params("id"), req.RoleIDs); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign roles")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Roles updated successfully",
	})
}

// GetRolesAPI lists the available roles.
func GetRolesAPI(c *fiber.Ctx, db *sql.DB) error {
	roles, err := database.ListRoles(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch roles")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    roles,
	})
}
