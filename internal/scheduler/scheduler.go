package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/constraints"
	"github.com/julianstephens/cadence/internal/interval"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
)

// Options tunes a single scheduling pass. Start from DefaultOptions and
// override fields; values are used as given.
type Options struct {
	BufferMinutes         int                  // gap kept free after every placed block
	BreakThresholdMinutes int                  // blocks at or above this length get a trailing break
	BreakMinutes          int                  // rounded down to whole 5 minute steps
	Chronotype            constants.Chronotype // empty disables preferred deep windows
	Location              *time.Location       // nil means time.Local
}

// DefaultOptions returns the standard buffer and break settings
func DefaultOptions() Options {
	return Options{
		BufferMinutes:         constants.DefaultBufferMinutes,
		BreakThresholdMinutes: constants.DefaultBreakThresholdMinutes,
		BreakMinutes:          constants.DefaultBreakMinutes,
		Location:              time.Local,
	}
}

// OptionsFromSettings builds options from stored per-owner settings
func OptionsFromSettings(settings models.Settings, loc *time.Location) Options {
	return Options{
		BufferMinutes:         settings.BufferMinutes,
		BreakThresholdMinutes: settings.BreakThresholdMinutes,
		BreakMinutes:          settings.BreakMinutes,
		Chronotype:            constants.Chronotype(settings.Chronotype),
		Location:              loc,
	}
}

func (o Options) normalized() Options {
	if o.BufferMinutes < 0 {
		o.BufferMinutes = 0
	}
	if o.BreakThresholdMinutes < 0 {
		o.BreakThresholdMinutes = 0
	}
	if o.BreakMinutes < 0 {
		o.BreakMinutes = 0
	}
	o.BreakMinutes = o.BreakMinutes / 5 * 5
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// ScheduleDay places tasks into the free time of date and returns the blocks
// in placement order. Tasks that do not fit are left out; only malformed
// input (bad date, inverted constraint) is an error.
func (s *Scheduler) ScheduleDay(tasks []models.Task, cs []models.Constraint, prefs models.Preference, date string, opts Options) ([]models.ScheduledBlock, error) {
	opts = opts.normalized()

	// Step 1: Resolve free time for the date
	free, err := constraints.FreeIntervalsForDate(cs, date, opts.Location)
	if err != nil {
		return nil, err
	}
	meetingWindows, err := constraints.FixedWindowsForDate(cs, date, opts.Location, constants.MeetingPadMinutes)
	if err != nil {
		return nil, err
	}

	blocks := []models.ScheduledBlock{}
	if len(free) == 0 {
		logger.Debug("No free time on date", "date", date)
		return blocks, nil
	}

	// Step 2: Rank tasks by priority, ties keep input order
	ranked := RankTasks(tasks, prefs)

	deepWindows := PreferredDeepWindows(opts.Chronotype)
	remainingDeep := prefs.DeepWorkCapacity
	if remainingDeep < 0 {
		remainingDeep = 0
	}

	// Step 3: Greedy placement
	for _, task := range ranked {

		// Deep tasks past capacity are dropped, never demoted
		if task.IsDeep() && remainingDeep <= 0 {
			logger.Debug("Deep capacity exhausted, dropping task", "task", task.Title, "date", date)
			continue
		}

		duration := TaskDuration(task)

		var preferred []interval.Interval
		if task.IsDeep() {
			preferred = deepWindows
		} else {
			preferred = meetingWindows
		}

		placed, ok := findPlacement(free, duration, preferred)
		if !ok {
			logger.Debug("No room for task", "task", task.Title, "minutes", duration, "date", date)
			continue
		}

		blockType := constants.BlockShallow
		if task.IsDeep() {
			blockType = constants.BlockDeep
		}
		taskID := task.ID
		blocks = append(blocks, models.ScheduledBlock{
			TaskID:   &taskID,
			Type:     blockType,
			StartMin: placed.Start,
			EndMin:   placed.End,
			Label:    task.Title,
		})

		// Long blocks get a trailing break, clamped to the end of the day
		if duration >= opts.BreakThresholdMinutes {
			if brk, ok := trailingBreak(placed.End, opts.BreakMinutes); ok {
				blocks = append(blocks, brk)
			}
		}

		if task.IsDeep() {
			remainingDeep--
		}

		// Shrink free time by the block plus buffer only; breaks do not reserve time
		reservedEnd := min(placed.End+opts.BufferMinutes, constants.MinutesPerDay)
		free = interval.Subtract(free, interval.Interval{Start: placed.Start, End: reservedEnd})
	}

	return blocks, nil
}

// RankTasks returns a copy of tasks ordered by descending PriorityScore.
// Equal scores keep their input order.
func RankTasks(tasks []models.Task, prefs models.Preference) []models.Task {
	scores := make([]float64, len(tasks))
	idx := make([]int, len(tasks))
	for i, task := range tasks {
		idx[i] = i
		scores[i] = PriorityScore(task, prefs)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	out := make([]models.Task, len(tasks))
	for i, j := range idx {
		out[i] = tasks[j]
	}
	return out
}

// PriorityScore ranks a task: importance dominates, area weight breaks ties,
// and longer estimates are slightly penalized.
func PriorityScore(task models.Task, prefs models.Preference) float64 {
	estimate := task.EstimateMinutes
	if estimate < 15 {
		estimate = 15
	}
	return float64(task.Importance*2+prefs.AreaWeight(task.Area)) - float64(estimate)/60
}

// TaskDuration rounds the estimate to the nearest 5 minutes, with a 5 minute floor
func TaskDuration(task models.Task) int {
	d := int(math.Round(float64(task.EstimateMinutes)/5)) * 5
	if d < 5 {
		return 5
	}
	return d
}

// SortBlocks returns a copy of blocks ordered by start time for display
func SortBlocks(blocks []models.ScheduledBlock) []models.ScheduledBlock {
	sorted := make([]models.ScheduledBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMin < sorted[j].StartMin
	})
	return sorted
}
