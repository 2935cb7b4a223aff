package reports

import (
	"bytes"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"sala-admin/app/database"
)

// ExportStudentsCSVAPI streams the student ledger as a CSV download.
// Accepts the same filters as the students table.
func ExportStudentsCSVAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		ClassName: c.Query("class_name"),
		SortBy:    c.Query("sort_by", "student_code"),
		SortOrder: c.Query("sort_order", "asc"),
	}

	students, _, err := database.GetStudentsWithInstallments(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	var buf bytes.Buffer
	today := time.Now()
	if err := WriteStudentLedgerCSV(&buf, students, today); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build export")
	}

	filename := "students-" + today.Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
