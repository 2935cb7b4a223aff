package payments

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sala-admin/app/database"
	"sala-admin/app/ledger"
	"sala-admin/app/models"
)

// AddInstallmentAPI records a tuition installment for a student and hands
// back the student's recomputed ledger.
func AddInstallmentAPI(c *fiber.Ctx, db *sql.DB) error {
	var inst models.Installment
	if err := c.BodyParser(&inst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	inst.StudentID = c.Params("id")

	if inst.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be positive")
	}

	student, err := database.GetStudentByID(db, inst.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	// A recorded installment is a received payment.
	inst.Paid = true
	if inst.PaidAmount == 0 {
		inst.PaidAmount = inst.Amount
	}
	if inst.Date == "" {
		inst.Date = time.Now().Format("2/1/2006")
	}
	if receiver, ok := c.Locals("user").(*models.User); ok && inst.Receiver == "" {
		inst.Receiver = receiver.FullNameOrEmail()
	}
	inst.ReceiptNo = uuid.New().String()

	if err := database.CreateInstallment(db, &inst); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record installment")
	}

	student.Installments = append(student.Installments, &inst)
	acct := student.LedgerAccount()
	balance := ledger.RemainingBalance(acct)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    inst,
		"balance": balance.InexactFloat64(),
		"status":  ledger.PaymentStatus(acct, time.Now()),
		"message": "Installment recorded successfully",
	})
}

// GetStudentInstallmentsAPI lists a student's installments with totals.
func GetStudentInstallmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	acct := student.LedgerAccount()
	return c.JSON(fiber.Map{
		"success":      true,
		"installments": student.Installments,
		"total_owed":   ledger.TotalOwed(acct).InexactFloat64(),
		"total_paid":   ledger.TotalPaid(acct).InexactFloat64(),
		"balance":      ledger.RemainingBalance(acct).InexactFloat64(),
		"status":       ledger.PaymentStatus(acct, time.Now()),
	})
}

// DeleteInstallmentAPI voids a mistakenly entered installment.
func DeleteInstallmentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteInstallment(db, c.Params("installmentId")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Installment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete installment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Installment deleted successfully",
	})
}

// MarkStudentPaidAPI settles a student's remaining balance in one
// installment and stamps the legacy status column for old exports.
func MarkStudentPaidAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	balance := ledger.RemainingBalance(student.LedgerAccount())
	if balance.IsPositive() {
		inst := &models.Installment{
			StudentID:  studentID,
			Amount:     balance.InexactFloat64(),
			PaidAmount: balance.InexactFloat64(),
			Paid:       true,
			Date:       time.Now().Format("2/1/2006"),
			Note:       "Balance settled",
			ReceiptNo:  uuid.New().String(),
		}
		if receiver, ok := c.Locals("user").(*models.User); ok {
			inst.Receiver = receiver.FullNameOrEmail()
		}
		if err := database.CreateInstallment(db, inst); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to settle balance")
		}
	}

	if err := database.SetStudentLegacyStatus(db, studentID, "Paid"); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update status")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"settled": balance.InexactFloat64(),
		"message": "Student marked as paid",
	})
}

// GetPaymentStatsAPI returns ledger totals across all active students.
func GetPaymentStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, _, err := database.GetStudentsWithInstallments(db, database.StudentFilters{Status: "active"})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	today := time.Now()
	var totalOwed, totalPaid, outstanding float64
	counts := map[ledger.StatusKind]int{}
	for _, s := range students {
		acct := s.LedgerAccount()
		totalOwed += ledger.TotalOwed(acct).InexactFloat64()
		totalPaid += ledger.TotalPaid(acct).InexactFloat64()
		outstanding += ledger.RemainingBalance(acct).InexactFloat64()
		counts[ledger.PaymentStatus(acct, today).Kind]++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_owed":        totalOwed,
			"total_paid":        totalPaid,
			"outstanding":       outstanding,
			"paid_count":        counts[ledger.StatusPaid],
			"overdue_count":     counts[ledger.StatusOverdue],
			"warning_count":     counts[ledger.StatusWarning],
			"installment_count": counts[ledger.StatusInstallment],
			"pending_count":     counts[ledger.StatusPending],
		},
	})
}

// RecentPaymentsAPI returns the latest recorded installments.
func RecentPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	limit := c.QueryInt("limit", 20)
	installments, err := database.RecentInstallments(db, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    installments,
	})
}
