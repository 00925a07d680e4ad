package scheduler

import (
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/interval"
	"github.com/julianstephens/cadence/internal/models"
)

const breakLabel = "Break"

// PreferredDeepWindows returns the deep focus windows for a chronotype, or
// nil when no chronotype is set.
func PreferredDeepWindows(c constants.Chronotype) []interval.Interval {
	h := constants.MinutesPerHour
	switch c {
	case "":
		return nil
	case constants.ChronotypeEarly:
		return []interval.Interval{{Start: 9 * h, End: 12 * h}, {Start: 13 * h, End: 15 * h}}
	case constants.ChronotypeLate:
		return []interval.Interval{{Start: 14 * h, End: 18 * h}, {Start: 19 * h, End: 21 * h}}
	default:
		return []interval.Interval{{Start: 10 * h, End: 13 * h}, {Start: 14 * h, End: 16 * h}}
	}
}

// findPlacement tries every preferred window against every free interval in
// order, then falls back to the first free interval that fits.
func findPlacement(free []interval.Interval, duration int, preferred []interval.Interval) (interval.Interval, bool) {
	for _, w := range preferred {
		for _, f := range free {
			start := max(f.Start, w.Start)
			limit := min(f.End, w.End)
			if start+duration <= limit {
				return interval.Interval{Start: start, End: start + duration}, true
			}
		}
	}

	for _, f := range free {
		if f.Start+duration <= f.End {
			return interval.Interval{Start: f.Start, End: f.Start + duration}, true
		}
	}
	return interval.Interval{}, false
}

// trailingBreak builds the break after a block ending at end. A break cut by
// the end of the day is rounded down to whole 5 minute steps.
func trailingBreak(end, minutes int) (models.ScheduledBlock, bool) {
	length := minutes
	if end+minutes > constants.MinutesPerDay {
		length = (constants.MinutesPerDay - end) / 5 * 5
	}
	if length <= 0 {
		return models.ScheduledBlock{}, false
	}
	return models.ScheduledBlock{
		Type:     constants.BlockBreak,
		StartMin: end,
		EndMin:   end + length,
		Label:    breakLabel,
	}, true
}
