package students

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"sala-admin/app/database"
	"sala-admin/app/ledger"
	"sala-admin/app/models"
)

// ledgerRow derives the financial figures for one student. The caller picks
// today once so every row of a response sees the same clock.
func ledgerRow(s *models.Student, today time.Time) *models.StudentLedgerRow {
	acct := s.LedgerAccount()
	owed := ledger.TotalOwed(acct)
	paid := ledger.TotalPaid(acct)
	return &models.StudentLedgerRow{
		Student:   *s,
		TotalOwed: owed.InexactFloat64(),
		TotalPaid: paid.InexactFloat64(),
		Balance:   ledger.RemainingBalance(acct).InexactFloat64(),
		Ledger:    ledger.PaymentStatus(acct, today),
	}
}

// GetStudentsTableAPI returns students for table display with filtering,
// sorting, pagination and computed ledger figures.
func GetStudentsTableAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		ClassName: c.Query("class_name"),
		Gender:    c.Query("gender"),
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
		SortBy:    c.Query("sort_by", "student_code"),
		SortOrder: c.Query("sort_order", "asc"),
		Limit:     c.QueryInt("limit", 10),
		Offset:    c.QueryInt("offset", 0),
	}

	students, totalCount, err := database.GetStudentsWithInstallments(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	today := time.Now()
	rows := make([]*models.StudentLedgerRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, ledgerRow(s, today))
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"students":    rows,
		"count":       len(rows),
		"total_count": totalCount,
	})
}

// GetStudentByIDAPI returns one student with installments and ledger figures.
func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    ledgerRow(student, time.Now()),
	})
}

// CreateStudentAPI registers a new student with the enrollment fee snapshot.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if student.FirstName == "" || student.LastName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if student.TuitionFee < 0 || student.MaterialFee < 0 || student.AdminFee < 0 ||
		student.DiscountAmount < 0 || student.InitialPayment < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amounts cannot be negative")
	}

	if student.EnrolledAt.IsZero() {
		student.EnrolledAt = time.Now()
	}
	if student.StudentCode == "" {
		code, err := database.NextStudentCode(db, time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to allocate student code")
		}
		student.StudentCode = code
	}

	if err := database.CreateStudent(db, &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    ledgerRow(&student, time.Now()),
		"message": "Student registered successfully",
	})
}

// UpdateStudentAPI updates a student's identity and fee fields.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	student.ID = c.Params("id")

	if err := database.UpdateStudent(db, &student); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}

// DeleteStudentAPI soft deletes a student.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SoftDeleteStudent(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}

// SetStudentActiveAPI flags a student active or dropped out.
func SetStudentActiveAPI(c *fiber.Ctx, db *sql.DB) error {
	type request struct {
		IsActive bool `json:"is_active"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := database.SetStudentActive(db, c.Params("id"), req.IsActive); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student status updated",
	})
}

// ImportStudentsAPI accepts records in the old document-store shape: loosely
// typed fields, aliases, installments as arrays or keyed maps. Resolution
// happens once here, through the ledger boundary; malformed fields degrade
// to zero instead of rejecting the record.
func ImportStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	var records []map[string]interface{}
	if err := c.BodyParser(&records); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	imported := 0
	failed := 0
	for _, rec := range records {
		acct := ledger.AccountFromRecord(rec)

		student := models.Student{
			FirstName:       stringOr(rec, "firstName", "first_name"),
			LastName:        stringOr(rec, "lastName", "last_name"),
			KhmerName:       stringOr(rec, "khmerName", "khmer_name"),
			Phone:           stringOr(rec, "phone"),
			GuardianName:    stringOr(rec, "guardianName", "guardian_name"),
			GuardianPhone:   stringOr(rec, "guardianPhone", "guardian_phone"),
			ClassName:       stringOr(rec, "className", "class_name", "class"),
			EnrolledAt:      time.Now(),
			TuitionFee:      acct.TuitionFee.InexactFloat64(),
			MaterialFee:     acct.MaterialFee.InexactFloat64(),
			AdminFee:        acct.AdminFee.InexactFloat64(),
			DiscountAmount:  acct.DiscountAmount.InexactFloat64(),
			DiscountPercent: acct.DiscountPercent.InexactFloat64(),
			InitialPayment:  acct.InitialPayment.InexactFloat64(),
			DueDate:         acct.DueDateRaw,
			PaymentStatus:   acct.LegacyStatus,
		}
		if student.FirstName == "" && student.LastName == "" {
			failed++
			continue
		}
		if code := stringOr(rec, "studentCode", "student_code"); code != "" {
			student.StudentCode = code
		} else {
			code, err := database.NextStudentCode(db, time.Now())
			if err != nil {
				failed++
				continue
			}
			student.StudentCode = code
		}

		if err := database.CreateStudent(db, &student); err != nil {
			failed++
			continue
		}
		for _, inst := range acct.Installments {
			row := &models.Installment{
				StudentID:  student.ID,
				Amount:     inst.Amount.InexactFloat64(),
				PaidAmount: inst.PaidAmount.InexactFloat64(),
				Paid:       inst.Paid,
				Status:     inst.Status,
				Date:       inst.Date,
				Note:       inst.Note,
				Receiver:   inst.Receiver,
			}
			if err := database.CreateInstallment(db, row); err != nil {
				continue
			}
		}
		imported++
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imported": imported,
		"failed":   failed,
	})
}

func stringOr(rec map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// GetStudentsStatsAPI returns headline counts for the students page.
func GetStudentsStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats := fiber.Map{
		"total":    0,
		"active":   0,
		"inactive": 0,
	}

	var total, active int
	db.QueryRow(`SELECT COUNT(*), COUNT(CASE WHEN is_active THEN 1 END)
		FROM students WHERE deleted_at IS NULL`).Scan(&total, &active)
	// Ignore errors and return zero stats so the page always renders
	stats["total"] = total
	stats["active"] = active
	stats["inactive"] = total - active

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
