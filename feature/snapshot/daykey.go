package snapshot

import (
	"regexp"
	"time"
)

// dayKeyLayout encodes a calendar day as year plus zero-padded day-of-year,
// e.g. 2026-244. Keys sort chronologically as plain strings.
const dayKeyLayout = "2006-002"

var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{3}$`)

// DayKey is the deterministic, sortable identifier naming one day's snapshot.
type DayKey string

// NewDayKey returns the DayKey for the calendar day of t.
func NewDayKey(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// IsDayKey reports whether s is a well-formed day key.
func IsDayKey(s string) bool {
	return dayKeyPattern.MatchString(s)
}

func (k DayKey) String() string {
	return string(k)
}
