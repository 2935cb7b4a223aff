package ledger

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayMarker is the Khmer day-of-month prefix found in long-form dates the
// old panel stored, e.g. "ថ្ងៃទី5 5/3/2024".
const dayMarker = "ថ្ងៃទី"

// noneKH is the localized "none" token stored for students without a plan.
const noneKH = "គ្មាន"

var (
	// strict D/M/Y, the plain encoding
	plainSlashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	// any D/M/Y group, for long-form strings that carry extra text
	anySlashDate = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
)

// ParseDueDate extracts a calendar date from the textual encodings the store
// accumulated. In priority order: a localized long-form string carrying the
// day marker with D/M/Y groups somewhere after it, then a plain D/M/Y
// string. Sentinels ("", "N/A", the Khmer none token) and anything
// unparseable report ok=false; this never returns an error.
func ParseDueDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "N/A") || s == noneKH {
		return time.Time{}, false
	}

	var m []string
	if strings.Contains(s, dayMarker) {
		m = anySlashDate.FindStringSubmatch(s)
	} else {
		m = plainSlashDate.FindStringSubmatch(s)
	}
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	// time.Date normalizes out-of-range components the same way the old
	// records were interpreted, so no bounds check here.
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// daysBetween counts whole calendar days from one date to the other, both
// truncated to midnight. Negative when to precedes from.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
