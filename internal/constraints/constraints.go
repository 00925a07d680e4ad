// Package constraints resolves hard time constraints into busy and free
// minute intervals for a single local calendar day.
package constraints

import (
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/interval"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
	"github.com/julianstephens/cadence/internal/validation"
)

// Day parses a YYYY-MM-DD date as local midnight in loc. A nil loc means
// time.Local.
func Day(date string, loc *time.Location) (time.Time, error) {
	day, err := utils.ParseDateInLocation(date, loc)
	if err != nil {
		return time.Time{}, validation.Errorf(validation.CategoryInvalidDate, "date", "cannot parse %q as YYYY-MM-DD", date)
	}
	return day, nil
}

// BusyIntervalsForDate returns the merged busy intervals that blocking
// constraints occupy on date. A constraint crossing midnight contributes only
// the part that falls inside the queried day.
func BusyIntervalsForDate(cs []models.Constraint, date string, loc *time.Location) ([]interval.Interval, error) {
	day, err := Day(date, loc)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckConstraints(cs); err != nil {
		return nil, err
	}
	return busyForDay(cs, day), nil
}

// FreeIntervalsForDate returns the full day minus the busy intervals.
func FreeIntervalsForDate(cs []models.Constraint, date string, loc *time.Location) ([]interval.Interval, error) {
	busy, err := BusyIntervalsForDate(cs, date, loc)
	if err != nil {
		return nil, err
	}
	return interval.Invert(interval.Day, busy), nil
}

// FixedWindowsForDate returns a window reaching pad minutes either side of
// each fixed constraint that touches date, clamped to the day. Windows are in
// constraint order and are not merged.
func FixedWindowsForDate(cs []models.Constraint, date string, loc *time.Location, pad int) ([]interval.Interval, error) {
	day, err := Day(date, loc)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckConstraints(cs); err != nil {
		return nil, err
	}
	return fixedWindowsForDay(cs, day, pad), nil
}

// dayMinutes converts the part of [start, end) inside day to day-minutes.
func dayMinutes(start, end, day time.Time) (interval.Interval, bool) {
	dayStart, dayEnd := utils.DayBounds(day)
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}
	if !end.After(start) {
		return interval.Interval{}, false
	}
	span := interval.Interval{
		Start: utils.MinutesBetween(dayStart, start),
		End:   utils.MinutesBetween(dayStart, end),
	}
	return interval.Clamp(span, 0, constants.MinutesPerDay)
}

func busyForDay(cs []models.Constraint, day time.Time) []interval.Interval {
	var busy []interval.Interval
	for _, c := range cs {
		if !constants.IsBlockingConstraint(c.Kind) {
			continue
		}
		if span, ok := dayMinutes(c.Start, c.End, day); ok {
			busy = append(busy, span)
		}
	}
	return interval.Merge(busy)
}

func fixedWindowsForDay(cs []models.Constraint, day time.Time, pad int) []interval.Interval {
	if pad < 0 {
		pad = 0
	}
	dayStart, dayEnd := utils.DayBounds(day)

	var windows []interval.Interval
	for _, c := range cs {
		if c.Kind != constants.ConstraintFixed {
			continue
		}
		// Ending exactly at midnight still counts; starting at the next midnight does not.
		if c.End.Before(dayStart) || !c.Start.Before(dayEnd) {
			continue
		}
		w := interval.Interval{
			Start: utils.MinutesBetween(dayStart, c.Start) - pad,
			End:   utils.MinutesBetween(dayStart, c.End) + pad,
		}
		if clamped, ok := interval.Clamp(w, 0, constants.MinutesPerDay); ok {
			windows = append(windows, clamped)
		}
	}
	return windows
}
