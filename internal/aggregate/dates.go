package aggregate

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Now is the current instant in UTC, the zone every stored calendar date uses.
func Now() time.Time {
	return time.Now().UTC()
}

// CalendarDay drops the time of day, keeping the date as seen in t's location.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil counts calendar days from reference to target: 1 for tomorrow,
// 0 for the same day, negative once target has passed.
func DaysUntil(target, reference time.Time) int {
	diff := CalendarDay(target).Sub(CalendarDay(reference))
	return int(diff.Hours() / 24)
}

// ParseDate reads a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DateKey orders calendar dates for SortByDate.
func DateKey(t time.Time) int64 {
	return CalendarDay(t).Unix()
}
