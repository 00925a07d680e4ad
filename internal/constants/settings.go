package constants

const (
	// Scheduling Settings
	SettingBufferMinutes         = "buffer_minutes"
	SettingBreakThresholdMinutes = "break_threshold_minutes"
	SettingBreakMinutes          = "break_minutes"
	SettingChronotype            = "chronotype"
	SettingTimezone              = "timezone"
	SettingWeeklyBufferPercent   = "weekly_buffer_percent"

	// Default Settings Values
	DefaultBufferMinutes         = 10
	DefaultBreakThresholdMinutes = 60
	DefaultBreakMinutes          = 10
	DefaultChronotype            = ""
	DefaultTimezone              = "Local" // Use system local timezone by default

	// Weekly capacity and distribution buffers (percent of free time held back)
	DefaultCapacityBufferPercent     = 10
	DefaultDistributionBufferPercent = 15
	MaxBufferPercent                 = 50

	// Preference defaults
	DefaultAreaWeight       = 5
	DefaultDeepWorkCapacity = 2
	DefaultBreakPreference  = 5
	DefaultSleepTargetHours = 8.0

	// WHO 2020 activity defaults
	DefaultWeeklyModerateMinutes = 150
	DefaultWeeklyStrengthDays    = 2

	// Adaptive windows
	DefaultMoodWindowDays = 7

	// MeetingPadMinutes is the window kept around fixed meetings for shallow work
	MeetingPadMinutes = 60
)
