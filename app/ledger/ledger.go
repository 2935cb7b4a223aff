// Package ledger computes the tuition ledger for a student account: total
// owed, total paid, remaining balance and a payment status classification.
// Every function is pure — no clock reads, no I/O — and never fails: corrupt
// or partially filled records degrade to conservative defaults instead of
// blocking the caller.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusKind is the payment status classification of an account.
type StatusKind string

const (
	StatusPaid        StatusKind = "paid"
	StatusOverdue     StatusKind = "overdue"
	StatusWarning     StatusKind = "warning"
	StatusInstallment StatusKind = "installment"
	StatusPending     StatusKind = "pending"
)

// Status pairs a status kind with its day count: days until the due date for
// warning, days past it for overdue, zero otherwise.
type Status struct {
	Kind          StatusKind `json:"kind"`
	DaysRemaining int        `json:"days_remaining"`
}

// warningWindowDays is the due-soon window, inclusive. A due date further out
// than this intentionally falls back to the legacy status text rather than
// reporting "not yet due".
const warningWindowDays = 7

// Legacy free-text statuses, English and Khmer.
const (
	legacyPaidEN        = "paid"
	legacyInstallmentEN = "installment"
	legacyPaidKH        = "បង់រួច"
	legacyInstallmentKH = "បង់រំលស់"
)

var hundred = decimal.NewFromInt(100)

// TotalOwed returns the amount charged to the account after discounts,
// clamped at zero. The percent discount applies to the tuition fee only.
func TotalOwed(a Account) decimal.Decimal {
	discount := a.DiscountAmount.Add(a.TuitionFee.Mul(a.DiscountPercent).Div(hundred))
	owed := a.TuitionFee.Add(a.MaterialFee).Add(a.AdminFee).Sub(discount)
	return clampZero(owed)
}

// TotalPaid returns the initial payment plus every paid installment. An
// installment's PaidAmount is used when present, its Amount otherwise.
func TotalPaid(a Account) decimal.Decimal {
	total := a.InitialPayment
	for _, inst := range a.Installments {
		if !inst.IsPaid() {
			continue
		}
		amt := inst.PaidAmount
		if amt.IsZero() {
			amt = inst.Amount
		}
		total = total.Add(amt)
	}
	return clampZero(total)
}

// RemainingBalance returns what is still owed, clamped at zero.
func RemainingBalance(a Account) decimal.Decimal {
	return clampZero(TotalOwed(a).Sub(TotalPaid(a)))
}

// PaymentStatus classifies the account as of today. First match wins:
//
//  1. zero balance is paid, regardless of any due date;
//  2. a parseable due date within the decision window yields overdue or
//     warning; a date further than warningWindowDays out falls through;
//  3. the legacy free-text status field decides, defaulting to pending.
//
// The caller supplies today so one rendering pass sees one consistent clock.
func PaymentStatus(a Account, today time.Time) Status {
	if RemainingBalance(a).IsZero() {
		return Status{Kind: StatusPaid}
	}

	if due, ok := ParseDueDate(a.DueDateRaw); ok {
		diff := daysBetween(today, due)
		switch {
		case diff < 0:
			return Status{Kind: StatusOverdue, DaysRemaining: -diff}
		case diff <= warningWindowDays:
			return Status{Kind: StatusWarning, DaysRemaining: diff}
		}
	}

	switch normalizeLegacyStatus(a.LegacyStatus) {
	case legacyPaidEN:
		return Status{Kind: StatusPaid}
	case legacyInstallmentEN:
		return Status{Kind: StatusInstallment}
	default:
		return Status{Kind: StatusPending}
	}
}

func normalizeLegacyStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case legacyPaidKH:
		return legacyPaidEN
	case legacyInstallmentKH:
		return legacyInstallmentEN
	}
	return s
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
