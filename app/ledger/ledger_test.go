package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testAccount() Account {
	return Account{
		TuitionFee:      dec("100"),
		MaterialFee:     dec("20"),
		AdminFee:        dec("5"),
		DiscountAmount:  dec("10"),
		DiscountPercent: dec("5"),
		InitialPayment:  dec("60"),
	}
}

func TestTotalOwed(t *testing.T) {
	// discount = 10 + 100*5% = 15; owed = 125 - 15 = 110
	a := testAccount()
	assert.True(t, dec("110").Equal(TotalOwed(a)), "got %s", TotalOwed(a))
}

func TestTotalOwed_NoDiscounts(t *testing.T) {
	a := Account{TuitionFee: dec("100"), MaterialFee: dec("20"), AdminFee: dec("5")}
	assert.True(t, dec("125").Equal(TotalOwed(a)))
}

func TestTotalOwed_NeverNegative(t *testing.T) {
	a := Account{TuitionFee: dec("50"), DiscountAmount: dec("200")}
	assert.True(t, TotalOwed(a).IsZero())
}

func TestTotalPaid_InitialPaymentOnly(t *testing.T) {
	a := Account{InitialPayment: dec("60")}
	assert.True(t, dec("60").Equal(TotalPaid(a)))
}

func TestTotalPaid_CountsOnlyPaidInstallments(t *testing.T) {
	a := Account{
		InitialPayment: dec("60"),
		Installments: []Installment{
			{Amount: dec("25"), Paid: true},
			{Amount: dec("25")},                          // unpaid, ignored
			{Amount: dec("30"), Status: "paid"},          // string fallback
			{Amount: dec("40"), PaidAmount: dec("35"), Paid: true}, // partial
		},
	}
	assert.True(t, dec("150").Equal(TotalPaid(a)), "got %s", TotalPaid(a))
}

func TestRemainingBalance(t *testing.T) {
	a := testAccount()
	assert.True(t, dec("50").Equal(RemainingBalance(a)), "got %s", RemainingBalance(a))
}

func TestRemainingBalance_NeverNegative(t *testing.T) {
	a := Account{TuitionFee: dec("50"), InitialPayment: dec("500")}
	assert.True(t, RemainingBalance(a).IsZero())
}

func TestPaymentStatus_PaidWinsOverDueDate(t *testing.T) {
	today := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	a := Account{
		TuitionFee:     dec("100"),
		InitialPayment: dec("100"),
		DueDateRaw:     "5/3/2024", // already past, irrelevant
	}
	assert.Equal(t, Status{Kind: StatusPaid}, PaymentStatus(a, today))
}

func TestPaymentStatus_Overdue(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	a := Account{TuitionFee: dec("100"), DueDateRaw: "5/3/2024"}
	assert.Equal(t, Status{Kind: StatusOverdue, DaysRemaining: 5}, PaymentStatus(a, today))
}

func TestPaymentStatus_Warning(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	a := Account{TuitionFee: dec("100"), DueDateRaw: "15/3/2024"}
	assert.Equal(t, Status{Kind: StatusWarning, DaysRemaining: 5}, PaymentStatus(a, today))
}

func TestPaymentStatus_DueToday(t *testing.T) {
	today := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	a := Account{TuitionFee: dec("100"), DueDateRaw: "10/3/2024"}
	assert.Equal(t, Status{Kind: StatusWarning, DaysRemaining: 0}, PaymentStatus(a, today))
}

func TestPaymentStatus_FarDueDateFallsBackToLegacy(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	a := Account{TuitionFee: dec("100"), DueDateRaw: "1/4/2024"}
	assert.Equal(t, Status{Kind: StatusPending}, PaymentStatus(a, today))

	a.LegacyStatus = "Installment"
	assert.Equal(t, Status{Kind: StatusInstallment}, PaymentStatus(a, today))
}

func TestPaymentStatus_LegacyText(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	base := Account{TuitionFee: dec("100")}

	cases := []struct {
		legacy string
		want   StatusKind
	}{
		{"Paid", StatusPaid},
		{legacyPaidKH, StatusPaid},
		{"Installment", StatusInstallment},
		{legacyInstallmentKH, StatusInstallment},
		{"Pending", StatusPending},
		{"", StatusPending},
		{"whatever", StatusPending},
	}
	for _, tc := range cases {
		a := base
		a.LegacyStatus = tc.legacy
		got := PaymentStatus(a, today)
		assert.Equal(t, tc.want, got.Kind, "legacy %q", tc.legacy)
		assert.Zero(t, got.DaysRemaining, "legacy %q", tc.legacy)
	}
}

func TestPaymentStatus_MalformedDueDateDegrades(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	a := Account{TuitionFee: dec("100"), DueDateRaw: "not-a-date"}
	require.NotPanics(t, func() { PaymentStatus(a, today) })
	assert.Equal(t, Status{Kind: StatusPending}, PaymentStatus(a, today))
}

func TestEndToEndExample(t *testing.T) {
	a := testAccount()
	assert.True(t, dec("110").Equal(TotalOwed(a)))
	assert.True(t, dec("60").Equal(TotalPaid(a)))
	assert.True(t, dec("50").Equal(RemainingBalance(a)))
}
