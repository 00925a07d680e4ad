package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*constants.MinutesPerHour + t.Minute(), nil
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	// Return the date at midnight in the specified timezone
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ParseTimestamp parses an ISO-8601 timestamp. Values carrying an offset
// (RFC3339) are absolute; wall-clock values without one are read in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{constants.LocalDateTimeFormat, constants.LocalDateTimeMinuteFormat} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC3339 or YYYY-MM-DDTHH:MM[:SS]", value)
}

// FormatTimestamp renders t as RFC3339 for storage.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// DayBounds returns local midnight of date and the following local midnight.
// On DST transition days the span is 23 or 25 hours long.
func DayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	end := time.Date(y, m, d+1, 0, 0, 0, 0, date.Location())
	return start, end
}

// AddDays returns local midnight n calendar days after date.
func AddDays(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, date.Location())
}

// MinutesBetween returns the rounded number of minutes from a to b.
func MinutesBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Minutes()))
}

// NextISOWeekStart returns the Monday after now at local midnight. A Monday
// rolls forward to the following Monday.
func NextISOWeekStart(now time.Time) time.Time {
	isoDay := int(now.Weekday())
	if isoDay == 0 {
		isoDay = 7
	}
	diff := (8 - isoDay) % 7
	if diff == 0 {
		diff = 7
	}
	return AddDays(now, diff)
}
