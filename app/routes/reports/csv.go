package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"sala-admin/app/ledger"
	"sala-admin/app/models"
)

const (
	numFields     = 10
	colCode       = 0
	colName       = 1
	colKhmerName  = 2
	colClass      = 3
	colOwed       = 4
	colPaid       = 5
	colBalance    = 6
	colStatus     = 7
	colStatusDays = 8
	colDueDate    = 9
)

var csvHeader = []string{
	"student_code", "name", "khmer_name", "class",
	"total_owed", "total_paid", "balance", "status", "status_days", "due_date",
}

// WriteStudentLedgerCSV writes one row per student with the computed ledger
// figures. The caller provides today so a whole export shares one clock.
func WriteStudentLedgerCSV(w io.Writer, students []*models.Student, today time.Time) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, s := range students {
		if err := cw.Write(marshalStudentRow(s, today)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// marshalStudentRow converts a student to a CSV row.
func marshalStudentRow(s *models.Student, today time.Time) []string {
	acct := s.LedgerAccount()
	status := ledger.PaymentStatus(acct, today)

	row := make([]string, numFields)
	row[colCode] = s.StudentCode
	row[colName] = s.FullName()
	row[colKhmerName] = s.KhmerName
	row[colClass] = s.ClassName
	row[colOwed] = ledger.TotalOwed(acct).StringFixed(2)
	row[colPaid] = ledger.TotalPaid(acct).StringFixed(2)
	row[colBalance] = ledger.RemainingBalance(acct).StringFixed(2)
	row[colStatus] = string(status.Kind)
	row[colStatusDays] = strconv.Itoa(status.DaysRemaining)
	row[colDueDate] = s.DueDate
	return row
}
