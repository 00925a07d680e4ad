package models

// Settings represents per-owner scheduling defaults used by the CLI
type Settings struct {
	BufferMinutes         int    `json:"buffer_minutes"`          // gap kept after every placed block
	BreakThresholdMinutes int    `json:"break_threshold_minutes"` // blocks at/above this length get a trailing break
	BreakMinutes          int    `json:"break_minutes"`           // length of an inserted break
	Chronotype            string `json:"chronotype"`              // early, intermediate, late or empty
	Timezone              string `json:"timezone"`                // IANA timezone name (e.g. "Europe/London", or "Local" for system timezone)
	WeeklyBufferPercent   int    `json:"weekly_buffer_percent"`   // share of weekly free time held back
}
