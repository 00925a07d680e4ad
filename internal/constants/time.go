package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// LocalDateTimeFormat is an ISO-8601 wall-clock timestamp without an offset
	LocalDateTimeFormat = "2006-01-02T15:04:05"

	// LocalDateTimeMinuteFormat is LocalDateTimeFormat without seconds
	LocalDateTimeMinuteFormat = "2006-01-02T15:04"

	MinutesPerHour = 60
	MinutesPerDay  = 24 * 60
	DaysPerWeek    = 7
)
