package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountFromRecord_AliasResolution(t *testing.T) {
	a := AccountFromRecord(map[string]interface{}{
		"tuitionFee":      100.0,
		"materialFee":     "20",
		"adminFee":        5,
		"discount":        15.0, // only the alias present
		"nextPaymentDate": "5/3/2024",
		"paymentStatus":   "Installment",
	})

	assert.True(t, dec("100").Equal(a.TuitionFee))
	assert.True(t, dec("20").Equal(a.MaterialFee))
	assert.True(t, dec("5").Equal(a.AdminFee))
	assert.True(t, dec("15").Equal(a.DiscountAmount))
	assert.Equal(t, "5/3/2024", a.DueDateRaw)
	assert.Equal(t, "Installment", a.LegacyStatus)
}

func TestAccountFromRecord_PrimaryFieldWinsOverAlias(t *testing.T) {
	a := AccountFromRecord(map[string]interface{}{
		"discountAmount":  10.0,
		"discount":        99.0,
		"dueDate":         "1/1/2025",
		"nextPaymentDate": "2/2/2025",
	})
	assert.True(t, dec("10").Equal(a.DiscountAmount))
	assert.Equal(t, "1/1/2025", a.DueDateRaw)
}

func TestAccountFromRecord_NonNumericCoercesToZero(t *testing.T) {
	a := AccountFromRecord(map[string]interface{}{
		"tuitionFee": "lots",
		"adminFee":   nil,
		"materialFee": map[string]interface{}{
			"oops": true,
		},
	})
	assert.True(t, a.TuitionFee.IsZero())
	assert.True(t, a.AdminFee.IsZero())
	assert.True(t, a.MaterialFee.IsZero())
}

func TestInstallments_ArrayAndKeyedMapAgree(t *testing.T) {
	asArray := AccountFromRecord(map[string]interface{}{
		"initialPayment": 60.0,
		"installments": []interface{}{
			map[string]interface{}{"amount": 25.0, "paid": true},
			map[string]interface{}{"amount": 30.0, "status": "paid"},
			map[string]interface{}{"amount": 99.0}, // unpaid
		},
	})
	asMap := AccountFromRecord(map[string]interface{}{
		"initialPayment": 60.0,
		"installments": map[string]interface{}{
			"-Nb1": map[string]interface{}{"amount": 25.0, "paid": true},
			"-Nb2": map[string]interface{}{"amount": 30.0, "status": "paid"},
			"-Nb3": map[string]interface{}{"amount": 99.0},
		},
	})

	assert.Len(t, asArray.Installments, 3)
	assert.Len(t, asMap.Installments, 3)
	assert.True(t, TotalPaid(asArray).Equal(TotalPaid(asMap)))
	assert.True(t, dec("115").Equal(TotalPaid(asArray)))
}

func TestInstallmentFromRecord_PaidAmountFallback(t *testing.T) {
	a := AccountFromRecord(map[string]interface{}{
		"installments": []interface{}{
			map[string]interface{}{"amount": 40.0, "paidAmount": 35.0, "paid": true},
			map[string]interface{}{"amount": 40.0, "paid": "true"}, // stringly bool
		},
	})
	assert.True(t, dec("75").Equal(TotalPaid(a)))
}
