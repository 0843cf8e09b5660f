package helpers

import (
	"time"
)

// DateTimeLayout is the textual timestamp format used at the API boundary.
const DateTimeLayout = "2006-01-02 15:04:05"

// Clock supplies the current time. Services take a Clock so date rules are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the configured location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// FormatDateTime renders t with DateTimeLayout; the zero time renders as "".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses s with DateTimeLayout in loc (UTC when nil).
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateTimeLayout, s, loc)
}

// StartOfTomorrow returns midnight of the day after now, in now's location.
func StartOfTomorrow(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
