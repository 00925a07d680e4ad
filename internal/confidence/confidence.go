// Package confidence scores a generated day schedule. The score is advisory
// and never feeds back into placement.
package confidence

import (
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/interval"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
)

const (
	coverageWeight  = 0.4
	alignmentWeight = 0.3
	breakWeight     = 0.2

	longBlockMinutes = 60
)

// ScoreOptions carries the deep focus windows used for the alignment penalty.
type ScoreOptions struct {
	DeepWindows []interval.Interval
}

// ScoreSchedule returns a score in [0,1] starting at 1 and subtracting
// penalties for unscheduled minutes, deep blocks outside the deep windows and
// long blocks without an adjacent break.
func ScoreSchedule(blocks []models.ScheduledBlock, prefs models.Preference, cs []models.Constraint, totalRequestedMinutes int, opts ScoreOptions) float64 {
	score := 1.0

	// Coverage
	scheduled := 0
	for _, b := range blocks {
		if b.IsTask() {
			scheduled += b.Minutes()
		}
	}
	coverage := 1.0
	if totalRequestedMinutes > 0 {
		coverage = clamp01(float64(scheduled) / float64(totalRequestedMinutes))
	}
	score -= (1 - coverage) * coverageWeight

	// Chronotype alignment
	if len(opts.DeepWindows) > 0 {
		deep, aligned := 0, 0
		for _, b := range blocks {
			if b.Type != constants.BlockDeep {
				continue
			}
			deep++
			mid := float64(b.StartMin+b.EndMin) / 2
			for _, w := range opts.DeepWindows {
				if mid >= float64(w.Start) && mid <= float64(w.End) {
					aligned++
					break
				}
			}
		}
		if deep > 0 {
			score -= (1 - float64(aligned)/float64(deep)) * alignmentWeight
		}
	}

	// Break adequacy
	long, missing := 0, 0
	for _, b := range blocks {
		if !b.IsTask() || b.Minutes() < longBlockMinutes {
			continue
		}
		long++
		if !hasAdjacentBreak(blocks, b) {
			missing++
		}
	}
	if long > 0 {
		score -= float64(missing) / float64(long) * breakWeight
	}

	return clamp01(score)
}

// TotalRequestedMinutes sums the rounded durations the scheduler would use
func TotalRequestedMinutes(tasks []models.Task) int {
	total := 0
	for _, t := range tasks {
		total += scheduler.TaskDuration(t)
	}
	return total
}

func hasAdjacentBreak(blocks []models.ScheduledBlock, b models.ScheduledBlock) bool {
	for _, x := range blocks {
		if x.Type == constants.BlockBreak && (x.StartMin == b.EndMin || x.EndMin == b.StartMin) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
