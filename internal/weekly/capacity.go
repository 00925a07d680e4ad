// Package weekly projects free capacity over a week and spreads a task
// backlog across its days.
package weekly

import (
	"math"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/constraints"
	"github.com/julianstephens/cadence/internal/interval"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
	"github.com/julianstephens/cadence/internal/validation"
)

// Capacity is the buffered free time of each day of a week
type Capacity struct {
	WeekStart        string `json:"week_start"` // YYYY-MM-DD
	DailyFreeMinutes []int  `json:"daily_free_minutes"`
	TotalFreeMinutes int    `json:"total_free_minutes"`
}

// CapacityOptions selects the week and the share of free time held back.
type CapacityOptions struct {
	WeekStart     string // YYYY-MM-DD; empty means the next ISO week after Now
	BufferPercent int    // clamped to 0..50
	Location      *time.Location
	Now           time.Time // zero means time.Now()
}

// DefaultCapacityOptions holds back 10% of each day
func DefaultCapacityOptions() CapacityOptions {
	return CapacityOptions{
		BufferPercent: constants.DefaultCapacityBufferPercent,
		Location:      time.Local,
	}
}

// SuggestWeeklyCapacity sums the free minutes of each of the seven days from
// the week start and reduces each by the buffer percentage.
func SuggestWeeklyCapacity(cs []models.Constraint, opts CapacityOptions) (Capacity, error) {
	start, err := resolveWeekStart(opts.WeekStart, opts.Location, opts.Now)
	if err != nil {
		return Capacity{}, err
	}
	if err := validation.CheckConstraints(cs); err != nil {
		return Capacity{}, err
	}

	keep := 1 - float64(clampPercent(opts.BufferPercent))/100

	c := Capacity{
		WeekStart:        start.Format(constants.DateFormat),
		DailyFreeMinutes: make([]int, constants.DaysPerWeek),
	}
	for i := 0; i < constants.DaysPerWeek; i++ {
		date := utils.AddDays(start, i).Format(constants.DateFormat)
		free, err := constraints.FreeIntervalsForDate(cs, date, start.Location())
		if err != nil {
			return Capacity{}, err
		}
		minutes := int(math.Round(float64(interval.Total(free)) * keep))
		if minutes < 0 {
			minutes = 0
		}
		c.DailyFreeMinutes[i] = minutes
		c.TotalFreeMinutes += minutes
	}
	return c, nil
}

func resolveWeekStart(weekStart string, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if weekStart != "" {
		return constraints.Day(weekStart, loc)
	}
	if now.IsZero() {
		now = time.Now()
	}
	return utils.NextISOWeekStart(now.In(loc)), nil
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > constants.MaxBufferPercent {
		return constants.MaxBufferPercent
	}
	return p
}
