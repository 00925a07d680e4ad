// Package health proposes weekly workout sessions from activity targets.
package health

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/constraints"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
)

const (
	minSessionMinutes     = 20
	maxSessionMinutes     = 60
	defaultSessionMinutes = 30
	defaultStartTime      = "18:00"
)

var (
	// Mon, Wed, Fri, Sat, Sun
	moderateDays = []int{0, 2, 4, 5, 6}
	// Tue, Thu
	strengthDays = []int{1, 3}
)

// WorkoutOptions selects the week and session lengths. Zero session lengths
// use the 30 minute default; others are clamped to 20..60.
type WorkoutOptions struct {
	WeekStart              string // YYYY-MM-DD; empty means the next ISO week after Now
	Now                    time.Time
	Location               *time.Location
	ModerateSessionMinutes int
	StrengthSessionMinutes int
}

// SuggestWorkoutsForNextWeek spreads moderate sessions over Mon/Wed/Fri/Sat/Sun
// and strength sessions over Tue/Thu, sorted by date then kind.
func SuggestWorkoutsForNextWeek(prefs models.Preference, opts WorkoutOptions) ([]models.WorkoutSuggestion, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	var start time.Time
	if opts.WeekStart != "" {
		day, err := constraints.Day(opts.WeekStart, loc)
		if err != nil {
			return nil, err
		}
		start = day
	} else {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		start = utils.NextISOWeekStart(now.In(loc))
	}

	moderateMinutes := sessionMinutes(opts.ModerateSessionMinutes)
	strengthMinutes := sessionMinutes(opts.StrengthSessionMinutes)

	targetModerate := constants.DefaultWeeklyModerateMinutes
	if prefs.WeeklyModerateMinutesTarget != nil {
		targetModerate = max(0, *prefs.WeeklyModerateMinutesTarget)
	}
	targetStrength := constants.DefaultWeeklyStrengthDays
	if prefs.WeeklyStrengthDaysTarget != nil {
		targetStrength = max(0, *prefs.WeeklyStrengthDaysTarget)
	}

	moderateSessions := int(math.Round(float64(targetModerate) / float64(moderateMinutes)))

	suggestions := []models.WorkoutSuggestion{}
	for i := 0; i < moderateSessions && i < len(moderateDays); i++ {
		suggestions = append(suggestions, models.WorkoutSuggestion{
			Date:      utils.AddDays(start, moderateDays[i]).Format(constants.DateFormat),
			StartTime: defaultStartTime,
			Minutes:   moderateMinutes,
			Kind:      constants.WorkoutModerate,
			Label:     "Workout (moderate)",
		})
	}
	for i := 0; i < targetStrength && i < len(strengthDays); i++ {
		suggestions = append(suggestions, models.WorkoutSuggestion{
			Date:      utils.AddDays(start, strengthDays[i]).Format(constants.DateFormat),
			StartTime: defaultStartTime,
			Minutes:   strengthMinutes,
			Kind:      constants.WorkoutStrength,
			Label:     "Workout (strength)",
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Date != suggestions[j].Date {
			return suggestions[i].Date < suggestions[j].Date
		}
		return suggestions[i].Kind < suggestions[j].Kind
	})
	return suggestions, nil
}

// ToBlocks converts the suggestions for date into workout blocks. Sessions
// running past midnight are cut at the end of the day.
func ToBlocks(suggestions []models.WorkoutSuggestion, date string) ([]models.ScheduledBlock, error) {
	var blocks []models.ScheduledBlock
	for _, s := range suggestions {
		if s.Date != date {
			continue
		}
		start, err := utils.ParseTimeToMinutes(s.StartTime)
		if err != nil {
			return nil, err
		}
		end := min(start+s.Minutes, constants.MinutesPerDay)
		if end <= start {
			continue
		}
		blocks = append(blocks, models.ScheduledBlock{
			Type:     constants.BlockWorkout,
			StartMin: start,
			EndMin:   end,
			Label:    s.Label,
		})
	}
	return blocks, nil
}

func sessionMinutes(requested int) int {
	if requested == 0 {
		return defaultSessionMinutes
	}
	return min(maxSessionMinutes, max(minSessionMinutes, requested))
}
