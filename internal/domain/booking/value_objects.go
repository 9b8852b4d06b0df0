package booking

import (
	"regexp"
	"time"
)

const DateLayout = "2006-01-02"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ParseDate accepts only real calendar dates in YYYY-MM-DD form. The result
// is midnight UTC and carries no zone meaning; it is a civil date.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, ErrInvalidDate
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// NormalizeTime trims a seconds suffix some stores append ("09:00:00" -> "09:00").
func NormalizeTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// ClampDays bounds a requested range length to [1, MaxRangeDays].
func ClampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > MaxRangeDays {
		return MaxRangeDays
	}
	return days
}

// ExpandDates lists days consecutive civil dates starting at start.
func ExpandDates(start time.Time, days int) []time.Time {
	days = ClampDays(days)
	y, m, d := start.Date()
	out := make([]time.Time, days)
	for i := range days {
		out[i] = time.Date(y, m, d+i, 0, 0, 0, 0, time.UTC)
	}
	return out
}

// Today is the current civil date in the business location.
func Today(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SlotStart places a civil date and HH:MM start on the wall clock of loc.
func SlotStart(date time.Time, start string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return time.Time{}, ErrInvalidBookingTime
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}
