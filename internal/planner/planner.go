// Package planner loads a day's inputs from storage, runs the scheduler and
// scores the result. It is shared by the plan command and the agenda viewer.
package planner

import (
	"fmt"
	"time"

	"github.com/julianstephens/cadence/internal/adaptive"
	"github.com/julianstephens/cadence/internal/confidence"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/constraints"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/utils"
)

// Source is the slice of storage the planner reads
type Source interface {
	GetAllTasks(owner string) ([]models.Task, error)
	GetConstraintsInRange(owner string, from, to time.Time) ([]models.Constraint, error)
	GetPreference(owner string) (models.Preference, error)
	GetRecentMoodLogs(owner string, limit int) ([]models.MoodLog, error)
}

// Inputs is everything the engine needs for one owner
type Inputs struct {
	Tasks       []models.Task
	Constraints []models.Constraint
	Preference  models.Preference
	Moods       []models.MoodLog
}

type Request struct {
	Owner    string
	Date     string // YYYY-MM-DD
	Options  scheduler.Options
	Adaptive bool
	// MoodWindowDays bounds the mood history read for the throttle; <= 0 means the default
	MoodWindowDays int
}

type Result struct {
	Agenda     models.Agenda
	Throttle   *adaptive.Throttle // nil unless the request was adaptive
	Preference models.Preference  // after throttling
	Options    scheduler.Options  // after throttling
	Requested  int                // minutes requested by all tasks
}

// LoadInputs reads the tasks, preference, recent moods and the constraints
// that can touch date, including those ending or starting within the meeting
// pad of midnight.
func LoadInputs(src Source, req Request) (Inputs, error) {
	day, err := constraints.Day(req.Date, req.Options.Location)
	if err != nil {
		return Inputs{}, err
	}
	dayStart, dayEnd := utils.DayBounds(day)
	pad := time.Duration(constants.MeetingPadMinutes) * time.Minute

	var in Inputs
	if in.Tasks, err = src.GetAllTasks(req.Owner); err != nil {
		return Inputs{}, fmt.Errorf("failed to get tasks: %w", err)
	}
	if in.Constraints, err = src.GetConstraintsInRange(req.Owner, dayStart.Add(-pad), dayEnd.Add(pad)); err != nil {
		return Inputs{}, fmt.Errorf("failed to get constraints: %w", err)
	}
	if in.Preference, err = src.GetPreference(req.Owner); err != nil {
		return Inputs{}, fmt.Errorf("failed to get preferences: %w", err)
	}
	if in.Moods, err = src.GetRecentMoodLogs(req.Owner, moodWindow(req.MoodWindowDays)); err != nil {
		return Inputs{}, fmt.Errorf("failed to get mood logs: %w", err)
	}
	return in, nil
}

func moodWindow(days int) int {
	if days <= 0 {
		return constants.DefaultMoodWindowDays
	}
	return days
}

// Plan schedules in for the requested date and scores the agenda
func Plan(sched *scheduler.Scheduler, in Inputs, req Request) (Result, error) {
	prefs := in.Preference
	opts := req.Options

	res := Result{}
	if req.Adaptive {
		var t adaptive.Throttle
		prefs, opts, t = adaptive.Apply(prefs, opts, in.Moods, moodWindow(req.MoodWindowDays))
		res.Throttle = &t
	}

	blocks, err := sched.ScheduleDay(in.Tasks, in.Constraints, prefs, req.Date, opts)
	if err != nil {
		return Result{}, err
	}

	res.Requested = confidence.TotalRequestedMinutes(in.Tasks)
	score := confidence.ScoreSchedule(blocks, prefs, in.Constraints, res.Requested, confidence.ScoreOptions{
		DeepWindows: scheduler.PreferredDeepWindows(opts.Chronotype),
	})

	res.Agenda = models.Agenda{
		Date:       req.Date,
		Owner:      req.Owner,
		Confidence: score,
		Blocks:     blocks,
	}
	res.Preference = prefs
	res.Options = opts
	return res, nil
}

// PlanFromSource is LoadInputs followed by Plan
func PlanFromSource(src Source, sched *scheduler.Scheduler, req Request) (Result, error) {
	in, err := LoadInputs(src, req)
	if err != nil {
		return Result{}, err
	}
	return Plan(sched, in, req)
}
