// Package interval implements set operations over half-open minute intervals
// within a single day.
package interval

import (
	"fmt"
	"sort"

	"github.com/julianstephens/cadence/internal/constants"
)

// Interval is a half-open span [Start, End) in minutes since local midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Day is the full-day range [0, 1440).
var Day = Interval{Start: 0, End: constants.MinutesPerDay}

// Len returns the interval length in minutes, or 0 when empty
func (i Interval) Len() int {
	if i.End <= i.Start {
		return 0
	}
	return i.End - i.Start
}

// Empty reports whether the interval covers no time
func (i Interval) Empty() bool {
	return i.End <= i.Start
}

// Contains reports whether minute m lies inside the interval
func (i Interval) Contains(m int) bool {
	return m >= i.Start && m < i.End
}

// Overlaps reports whether the two intervals share any minute
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", FormatClock(i.Start), FormatClock(i.End))
}

// Clamp intersects i with [min, max). The second result is false when the
// intersection is empty.
func Clamp(i Interval, min, max int) (Interval, bool) {
	start := i.Start
	if min > start {
		start = min
	}
	end := i.End
	if max < end {
		end = max
	}
	if end <= start {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// Merge returns the minimal sorted, non-overlapping cover of intervals.
// Touching intervals are coalesced. The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, i := range intervals {
		if !i.Empty() {
			sorted = append(sorted, i)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Start < sorted[b].Start
	})

	merged := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			if cur.End > last.End {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// Invert returns rng minus the union of busy.
func Invert(rng Interval, busy []Interval) []Interval {
	if rng.Empty() {
		return nil
	}

	var free []Interval
	cursor := rng.Start
	for _, b := range Merge(busy) {
		if b.Start > cursor {
			end := b.Start
			if end > rng.End {
				end = rng.End
			}
			if end > cursor {
				free = append(free, Interval{Start: cursor, End: end})
			}
		}
		if b.End > cursor {
			cursor = b.End
		}
		if cursor >= rng.End {
			break
		}
	}
	if cursor < rng.End {
		free = append(free, Interval{Start: cursor, End: rng.End})
	}
	return free
}

// Subtract removes cut from every interval in free, splitting intervals into
// left and right remainders where needed. Order is preserved and a new slice
// is returned.
func Subtract(free []Interval, cut Interval) []Interval {
	out := make([]Interval, 0, len(free)+1)
	for _, f := range free {
		if cut.Empty() || !f.Overlaps(cut) {
			out = append(out, f)
			continue
		}
		if cut.Start > f.Start {
			out = append(out, Interval{Start: f.Start, End: cut.Start})
		}
		if cut.End < f.End {
			out = append(out, Interval{Start: cut.End, End: f.End})
		}
	}
	return out
}

// Total sums the lengths of intervals. Overlaps are counted twice, so callers
// pass merged sets.
func Total(intervals []Interval) int {
	total := 0
	for _, i := range intervals {
		total += i.Len()
	}
	return total
}

// FormatClock renders minutes since midnight as HH:MM. 1440 renders as 24:00.
func FormatClock(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/constants.MinutesPerHour, m%constants.MinutesPerHour)
}
