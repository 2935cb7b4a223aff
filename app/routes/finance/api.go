package finance

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"sala-admin/app/models"
)

// GetCategoriesAPI returns all bookkeeping categories.
func GetCategoriesAPI(c *fiber.Ctx, db *sql.DB) error {
	categories, err := getAllCategories(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

// CreateCategoryAPI creates a new category.
func CreateCategoryAPI(c *fiber.Ctx, db *sql.DB) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if cat.Name == "" || (cat.Kind != models.IncomeCategory && cat.Kind != models.ExpenseCategory) {
		return fiber.NewError(fiber.StatusBadRequest, "Name and kind (income|expense) are required")
	}

	query := `INSERT INTO categories (name, kind) VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`
	if err := db.QueryRow(query, cat.Name, cat.Kind).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    cat,
		"message": "Category created successfully",
	})
}

// GetTransactionsAPI returns transactions filtered by kind and date range.
func GetTransactionsAPI(c *fiber.Ctx, db *sql.DB) error {
	kind := c.Query("kind") // "income", "expense", "" for all
	transactions, err := getTransactions(db, kind, c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transactions")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
	})
}

// CreateTransactionAPI records an income or expense entry.
func CreateTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	var t models.Transaction
	if err := c.BodyParser(&t); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if t.CategoryID == "" || t.Title == "" || t.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		t.RecordedBy = userID
	}

	var recordedBy interface{}
	if t.RecordedBy != "" {
		recordedBy = t.RecordedBy
	}
	query := `INSERT INTO transactions (category_id, title, amount, date, notes, recorded_by)
			  VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, t.CategoryID, t.Title, t.Amount, t.Date, t.Notes, recordedBy).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    t,
		"message": "Transaction recorded successfully",
	})
}

// UpdateTransactionAPI edits an existing entry.
func UpdateTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	var t models.Transaction
	if err := c.BodyParser(&t); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	query := `UPDATE transactions SET category_id = $1, title = $2, amount = $3,
			  date = $4, notes = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`
	result, err := db.Exec(query, t.CategoryID, t.Title, t.Amount, t.Date, t.Notes, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update transaction")
	}
	if n, err := result.RowsAffected(); err != nil || n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaction updated successfully",
	})
}

// DeleteTransactionAPI soft deletes an entry.
func DeleteTransactionAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := db.Exec(`UPDATE transactions SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete transaction")
	}
	if n, err := result.RowsAffected(); err != nil || n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaction deleted successfully",
	})
}

// GetMonthlySummaryAPI returns the income/expense summary for a month.
// Defaults to the current month; accepts ?month=2024-03.
func GetMonthlySummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	ref := time.Now()
	if m := c.Query("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
		}
		ref = parsed
	}

	summary, err := getMonthlySummary(db, ref)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute summary")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"month":   ref.Format("2006-01"),
		"data":    summary,
	})
}
