package domain

import "time"

// Calendar dates travel as "YYYY-MM-DD" strings, matching the store keys.
const DateLayout = "2006-01-02"

// DateOf formats a time as a calendar date in its own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar date.
func Today() string {
	return DateOf(time.Now())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// Yesterday returns the calendar day before date, exact across month
// and year rollovers. Returns "" for an unparseable date.
func Yesterday(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return DateOf(t.AddDate(0, 0, -1))
}
