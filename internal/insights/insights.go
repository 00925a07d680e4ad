// Package insights derives advisory notes from mood history and meeting
// density. Nothing here feeds back into scheduling.
package insights

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/cadence/internal/adaptive"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/constraints"
	"github.com/julianstephens/cadence/internal/interval"
	"github.com/julianstephens/cadence/internal/models"
)

const (
	NoteLowMood   = "Consider reducing planned load and adding more recovery time this week."
	NoteDeclining = "Mood trend is down. Try shorter deep blocks or fewer per day."
	NoteLowEnergy = "Energy is low. Schedule movement breaks and lighter tasks after lunch."
	NoteStable    = "You seem stable. Maintain buffers and keep protecting sleep and breaks."
)

type rule struct {
	matches func(adaptive.Stats) bool
	note    string
}

// Rules are checked in order and only the first match is reported.
var rules = []rule{
	{func(s adaptive.Stats) bool { return s.AvgMood <= 4 }, NoteLowMood},
	{func(s adaptive.Stats) bool { return s.MoodTrend <= -2 }, NoteDeclining},
	{func(s adaptive.Stats) bool { return s.AvgEnergy <= 4.5 }, NoteLowEnergy},
}

// ComputeWeeklyInsights reports average mood, average energy and mood trend
// over the trailing window, followed by one suggestion. Returns nil without
// history.
func ComputeWeeklyInsights(moods []models.MoodLog, windowDays int) []models.Insight {
	stats, ok := adaptive.Summarize(moods, windowDays)
	if !ok {
		return nil
	}

	note := NoteStable
	for _, r := range rules {
		if r.matches(stats) {
			note = r.note
			break
		}
	}

	return []models.Insight{
		{Metric: constants.MetricAvgMood, Value: round2(stats.AvgMood)},
		{Metric: constants.MetricAvgEnergy, Value: round2(stats.AvgEnergy)},
		{Metric: constants.MetricMoodTrend, Value: round2(stats.MoodTrend)},
		{Metric: constants.MetricSuggestion, Value: 1, Note: note},
	}
}

// ComputeMeetingAwareSuggestions names the merged windows around the fixed
// constraints of date where shallow work should cluster. Returns nil when no
// fixed constraint touches the date.
func ComputeMeetingAwareSuggestions(cs []models.Constraint, date string, loc *time.Location) ([]models.Insight, error) {
	windows, err := constraints.FixedWindowsForDate(cs, date, loc, constants.MeetingPadMinutes)
	if err != nil {
		return nil, err
	}
	merged := interval.Merge(windows)
	if len(merged) == 0 {
		return nil, nil
	}

	ranges := make([]string, len(merged))
	for i, w := range merged {
		ranges[i] = interval.FormatClock(w.Start) + "–" + interval.FormatClock(w.End)
	}

	return []models.Insight{{
		Metric: constants.MetricSuggestion,
		Value:  1,
		Note: fmt.Sprintf("Meeting-aware: cluster shallow/admin near %s. Protect deep blocks at least %d min away.",
			strings.Join(ranges, ", "), constants.MeetingPadMinutes),
	}}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
