package ledger

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is the resolved financial snapshot of a student record. Records
// arriving from the legacy document store are loosely typed bags of fields;
// all alias resolution and numeric coercion happens once, in
// AccountFromRecord, so the calculations below can assume a clean struct.
type Account struct {
	TuitionFee      decimal.Decimal
	MaterialFee     decimal.Decimal
	AdminFee        decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountPercent decimal.Decimal
	InitialPayment  decimal.Decimal
	Installments    []Installment
	DueDateRaw      string // kept in its original textual encoding
	LegacyStatus    string // free-text status, consulted only without a usable due date
}

// Installment is a single partial payment within a payment plan.
type Installment struct {
	Amount     decimal.Decimal
	PaidAmount decimal.Decimal
	Paid       bool
	Status     string // "paid" is recognized as a fallback for the Paid flag
	Date       string
	Note       string
	Receiver   string
}

// IsPaid reports whether the installment counts toward the total paid.
func (i Installment) IsPaid() bool {
	return i.Paid || strings.EqualFold(strings.TrimSpace(i.Status), "paid")
}

// AccountFromRecord resolves a loosely typed record into an Account.
// Field aliases are resolved first-non-empty wins: due_date before the
// legacy next_payment_date, discount_amount before discount. Amounts that
// are missing or non-numeric coerce to zero; this never fails.
func AccountFromRecord(rec map[string]interface{}) Account {
	return Account{
		TuitionFee:      amountField(rec, "tuitionFee", "tuition_fee"),
		MaterialFee:     amountField(rec, "materialFee", "material_fee"),
		AdminFee:        amountField(rec, "adminFee", "admin_fee"),
		DiscountAmount:  amountField(rec, "discountAmount", "discount_amount", "discount"),
		DiscountPercent: amountField(rec, "discountPercent", "discount_percent"),
		InitialPayment:  amountField(rec, "initialPayment", "initial_payment"),
		Installments:    installmentsField(rec["installments"]),
		DueDateRaw:      stringField(rec, "dueDate", "due_date", "nextPaymentDate", "next_payment_date"),
		LegacyStatus:    stringField(rec, "paymentStatus", "payment_status"),
	}
}

func amountField(rec map[string]interface{}, keys ...string) decimal.Decimal {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			if d, ok := coerceAmount(v); ok {
				return d
			}
		}
	}
	return decimal.Zero
}

func stringField(rec map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// coerceAmount converts whatever the store handed us into a decimal.
// Unrecognized shapes report false and the caller falls back to zero.
func coerceAmount(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case bool:
		// legacy records occasionally hold true for "has initial payment"
		return decimal.Zero, false
	default:
		return decimal.Zero, false
	}
}

// installmentsField normalizes the two installment shapes the store produced
// over its lifetime: a plain array, or a keyed map of push-style IDs to
// records. Map keys are sorted so repeated calls see the same order; only
// completeness matters for the sums.
func installmentsField(v interface{}) []Installment {
	switch seq := v.(type) {
	case []interface{}:
		out := make([]Installment, 0, len(seq))
		for _, e := range seq {
			if rec, ok := e.(map[string]interface{}); ok {
				out = append(out, installmentFromRecord(rec))
			}
		}
		return out
	case map[string]interface{}:
		keys := make([]string, 0, len(seq))
		for k := range seq {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Installment, 0, len(keys))
		for _, k := range keys {
			if rec, ok := seq[k].(map[string]interface{}); ok {
				out = append(out, installmentFromRecord(rec))
			}
		}
		return out
	default:
		return nil
	}
}

func installmentFromRecord(rec map[string]interface{}) Installment {
	paid := false
	switch p := rec["paid"].(type) {
	case bool:
		paid = p
	case string:
		paid, _ = strconv.ParseBool(p)
	}
	return Installment{
		Amount:     amountField(rec, "amount"),
		PaidAmount: amountField(rec, "paidAmount", "paid_amount"),
		Paid:       paid,
		Status:     stringField(rec, "status"),
		Date:       stringField(rec, "date"),
		Note:       stringField(rec, "note"),
		Receiver:   stringField(rec, "receiver"),
	}
}
