// Package adaptive derives a throttle factor from recent mood and energy logs
// and applies it to deep work capacity and buffers.
package adaptive

import (
	"math"
	"sort"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
)

const (
	lowMoodThreshold     = 3.5
	decliningDelta       = -2
	lowEnergyThreshold   = 3.5
	unthrottledThreshold = 0.99
	minBufferBump        = 2
)

// Throttle is the outcome of the throttle rules. AvgMood and AvgEnergy are
// nil when there is no history.
type Throttle struct {
	Factor    float64                  `json:"factor"`
	Reason    constants.ThrottleReason `json:"reason"`
	AvgMood   *float64                 `json:"avg_mood"`
	AvgEnergy *float64                 `json:"avg_energy"`
}

// Stats summarizes the trailing mood window
type Stats struct {
	AvgMood   float64
	AvgEnergy float64
	MoodTrend float64 // last mood minus first mood in the window
	Count     int
}

// RecentMoods returns the last windowDays logs ordered by date. A window of
// zero or less uses the default of seven.
func RecentMoods(moods []models.MoodLog, windowDays int) []models.MoodLog {
	if windowDays <= 0 {
		windowDays = constants.DefaultMoodWindowDays
	}
	sorted := make([]models.MoodLog, len(moods))
	copy(sorted, moods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	if len(sorted) > windowDays {
		sorted = sorted[len(sorted)-windowDays:]
	}
	return sorted
}

// Summarize computes averages and the mood trend over the trailing window.
// ok is false when there are no logs.
func Summarize(moods []models.MoodLog, windowDays int) (Stats, bool) {
	recent := RecentMoods(moods, windowDays)
	if len(recent) == 0 {
		return Stats{}, false
	}

	var mood, energy int
	for _, m := range recent {
		mood += m.Mood
		energy += m.Energy
	}
	n := float64(len(recent))
	return Stats{
		AvgMood:   float64(mood) / n,
		AvgEnergy: float64(energy) / n,
		MoodTrend: float64(recent[len(recent)-1].Mood - recent[0].Mood),
		Count:     len(recent),
	}, true
}

// ComputeAutoThrottle applies the first matching rule: low mood, declining
// trend, low energy, otherwise no throttle.
func ComputeAutoThrottle(moods []models.MoodLog, windowDays int) Throttle {
	stats, ok := Summarize(moods, windowDays)
	if !ok {
		return Throttle{Factor: 1.0, Reason: constants.ThrottleOK}
	}

	avgMood, avgEnergy := stats.AvgMood, stats.AvgEnergy
	t := Throttle{AvgMood: &avgMood, AvgEnergy: &avgEnergy}
	switch {
	case stats.AvgMood <= lowMoodThreshold:
		t.Factor, t.Reason = 0.7, constants.ThrottleLowMood
	case stats.MoodTrend <= decliningDelta:
		t.Factor, t.Reason = 0.8, constants.ThrottleDecliningTrend
	case stats.AvgEnergy <= lowEnergyThreshold:
		t.Factor, t.Reason = 0.85, constants.ThrottleLowEnergy
	default:
		t.Factor, t.Reason = 1.0, constants.ThrottleOK
	}
	return t
}

// AdjustPreferencesForThrottle returns a copy of prefs with deep work capacity
// scaled down by factor. A capacity of at least one never drops to zero.
func AdjustPreferencesForThrottle(prefs models.Preference, factor float64) models.Preference {
	out := prefs.Clone()
	original := prefs.DeepWorkCapacity
	if original < 1 {
		out.DeepWorkCapacity = 0
		return out
	}
	out.DeepWorkCapacity = max(1, int(math.Floor(float64(original)*factor)))
	return out
}

// AdjustBufferMinutes grows the buffer by the throttled share, at least two
// minutes, and leaves it alone when unthrottled.
func AdjustBufferMinutes(buffer int, factor float64) int {
	if factor >= unthrottledThreshold {
		return buffer
	}
	extra := int(math.Round(float64(buffer) * (1 - factor)))
	return buffer + max(minBufferBump, extra)
}

// Apply throttles both preferences and scheduling options from mood history.
func Apply(prefs models.Preference, opts scheduler.Options, moods []models.MoodLog, windowDays int) (models.Preference, scheduler.Options, Throttle) {
	t := ComputeAutoThrottle(moods, windowDays)
	adjusted := AdjustPreferencesForThrottle(prefs, t.Factor)
	opts.BufferMinutes = AdjustBufferMinutes(opts.BufferMinutes, t.Factor)

	if t.Reason != constants.ThrottleOK {
		logger.Info("Throttling schedule", "reason", t.Reason, "factor", t.Factor,
			"deep_capacity", adjusted.DeepWorkCapacity, "buffer", opts.BufferMinutes)
	}
	return adjusted, opts, t
}
