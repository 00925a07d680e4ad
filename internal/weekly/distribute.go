package weekly

import (
	"sort"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/utils"
)

// overflowMinutes is how far a task may exceed a day's remaining capacity
// when no day fits it outright.
const overflowMinutes = 10

// Assignment places one task on a day
type Assignment struct {
	TaskID  string         `json:"task_id"`
	Minutes int            `json:"minutes"`
	Area    constants.Area `json:"area"`
}

// DayPlan holds the tasks assigned to one date
type DayPlan struct {
	Date             string       `json:"date"`
	Assigned         []Assignment `json:"assigned"`
	RemainingMinutes int          `json:"remaining_minutes"`
}

// Distribution is the result of spreading tasks across a week. Tasks that
// fit no day, even with the overflow allowance, are listed in Unassigned.
type Distribution struct {
	WeekStart  string       `json:"week_start"`
	Days       []DayPlan    `json:"days"`
	Unassigned []Assignment `json:"unassigned,omitempty"`
}

// DistributeOptions selects the week and capacity buffer
type DistributeOptions struct {
	WeekStart     string
	BufferPercent int
	Location      *time.Location
	Now           time.Time
}

// DefaultDistributeOptions holds back 15% of each day
func DefaultDistributeOptions() DistributeOptions {
	return DistributeOptions{
		BufferPercent: constants.DefaultDistributionBufferPercent,
		Location:      time.Local,
	}
}

type weightedTask struct {
	task    models.Task
	minutes int
	weight  int
}

// DistributeTasksAcrossWeek assigns tasks to days, heaviest first. Each task
// goes to the fitting day where its area has the fewest minutes so far; if
// none fits, to the roomiest day within the overflow allowance.
func DistributeTasksAcrossWeek(tasks []models.Task, cs []models.Constraint, prefs models.Preference, opts DistributeOptions) (Distribution, error) {
	capacity, err := SuggestWeeklyCapacity(cs, CapacityOptions{
		WeekStart:     opts.WeekStart,
		BufferPercent: opts.BufferPercent,
		Location:      opts.Location,
		Now:           opts.Now,
	})
	if err != nil {
		return Distribution{}, err
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	start, err := utils.ParseDateInLocation(capacity.WeekStart, loc)
	if err != nil {
		return Distribution{}, err
	}

	dist := Distribution{
		WeekStart: capacity.WeekStart,
		Days:      make([]DayPlan, len(capacity.DailyFreeMinutes)),
	}
	areaMinutes := make([]map[constants.Area]int, len(dist.Days))
	for i, free := range capacity.DailyFreeMinutes {
		dist.Days[i] = DayPlan{
			Date:             utils.AddDays(start, i).Format(constants.DateFormat),
			Assigned:         []Assignment{},
			RemainingMinutes: free,
		}
		areaMinutes[i] = make(map[constants.Area]int)
	}

	weighted := make([]weightedTask, len(tasks))
	for i, t := range tasks {
		weighted[i] = weightedTask{
			task:    t,
			minutes: scheduler.TaskDuration(t),
			weight:  prefs.AreaWeight(t.Area) * t.Importance,
		}
	}
	sort.SliceStable(weighted, func(i, j int) bool {
		if weighted[i].weight != weighted[j].weight {
			return weighted[i].weight > weighted[j].weight
		}
		return weighted[i].minutes < weighted[j].minutes
	})

	for _, w := range weighted {
		a := Assignment{TaskID: w.task.ID, Minutes: w.minutes, Area: w.task.Area}

		chosen := leastLoadedFit(dist.Days, areaMinutes, w)
		if chosen < 0 {
			chosen = roomiestWithinOverflow(dist.Days, w.minutes)
		}
		if chosen < 0 {
			logger.Debug("Task fits no day this week", "task", w.task.Title, "minutes", w.minutes)
			dist.Unassigned = append(dist.Unassigned, a)
			continue
		}

		day := &dist.Days[chosen]
		day.Assigned = append(day.Assigned, a)
		day.RemainingMinutes = max(0, day.RemainingMinutes-w.minutes)
		areaMinutes[chosen][w.task.Area] += w.minutes
	}

	return dist, nil
}

// leastLoadedFit returns the earliest day with room for the task whose
// minutes in the task's area are lowest, or -1.
func leastLoadedFit(days []DayPlan, areaMinutes []map[constants.Area]int, w weightedTask) int {
	best := -1
	for i, d := range days {
		if d.RemainingMinutes < w.minutes {
			continue
		}
		if best < 0 || areaMinutes[i][w.task.Area] < areaMinutes[best][w.task.Area] {
			best = i
		}
	}
	return best
}

// roomiestWithinOverflow returns the earliest day with the most remaining
// minutes that is within the overflow allowance, or -1.
func roomiestWithinOverflow(days []DayPlan, minutes int) int {
	best := -1
	for i, d := range days {
		if d.RemainingMinutes+overflowMinutes < minutes {
			continue
		}
		if best < 0 || d.RemainingMinutes > days[best].RemainingMinutes {
			best = i
		}
	}
	return best
}
