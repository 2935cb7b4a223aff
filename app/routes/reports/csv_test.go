package reports

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sala-admin/app/models"
)

func TestWriteStudentLedgerCSV(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	students := []*models.Student{
		{
			StudentCode:     "STU-2024-0001",
			FirstName:       "Dara",
			LastName:        "Sok",
			ClassName:       "Grade 5",
			TuitionFee:      100,
			MaterialFee:     20,
			AdminFee:        5,
			DiscountAmount:  10,
			DiscountPercent: 5,
			InitialPayment:  60,
			DueDate:         "5/3/2024",
		},
		{
			StudentCode:    "STU-2024-0002",
			FirstName:      "Sreyneang",
			LastName:       "Chan",
			TuitionFee:     50,
			InitialPayment: 50,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStudentLedgerCSV(&buf, students, today))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])

	first := records[1]
	assert.Equal(t, "STU-2024-0001", first[colCode])
	assert.Equal(t, "Dara Sok", first[colName])
	assert.Equal(t, "110.00", first[colOwed])
	assert.Equal(t, "60.00", first[colPaid])
	assert.Equal(t, "50.00", first[colBalance])
	assert.Equal(t, "overdue", first[colStatus])
	assert.Equal(t, "5", first[colStatusDays])

	second := records[2]
	assert.Equal(t, "paid", second[colStatus])
	assert.Equal(t, "0", second[colStatusDays])
	assert.Equal(t, "0.00", second[colBalance])
}

func TestWriteStudentLedgerCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStudentLedgerCSV(&buf, nil, time.Now()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}
