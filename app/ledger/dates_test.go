package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate_PlainSlash(t *testing.T) {
	d, ok := ParseDueDate("5/3/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDueDate_LongForm(t *testing.T) {
	d, ok := ParseDueDate("ថ្ងៃទី5 5/3/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDueDate_Whitespace(t *testing.T) {
	d, ok := ParseDueDate("  15/12/2023 ")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDueDate_Sentinels(t *testing.T) {
	for _, s := range []string{"", "  ", "N/A", "n/a", noneKH} {
		_, ok := ParseDueDate(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestParseDueDate_Garbage(t *testing.T) {
	for _, s := range []string{"not-a-date", "2024-03-05", "5/3", "March 5, 2024"} {
		_, ok := ParseDueDate(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestDaysBetween_TruncatesToMidnight(t *testing.T) {
	from := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, daysBetween(from, to))
	assert.Equal(t, -1, daysBetween(to, from))
	assert.Equal(t, 0, daysBetween(from, from))
}
