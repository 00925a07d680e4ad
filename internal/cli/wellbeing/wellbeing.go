package wellbeing

import (
	"fmt"
	"strings"

	"github.com/julianstephens/cadence/internal/adaptive"
	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/health"
	"github.com/julianstephens/cadence/internal/insights"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/planner"
	"github.com/julianstephens/cadence/internal/tui/components/agenda"
)

type ThrottleCmd struct {
	Window int `short:"w" help:"Days of mood history to consider." default:"7"`
}

func (c *ThrottleCmd) Run(ctx *cli.Context) error {
	moods, err := ctx.Store.GetRecentMoodLogs(ctx.OwnerID(), c.Window)
	if err != nil {
		return fmt.Errorf("failed to get mood logs: %w", err)
	}

	t := adaptive.ComputeAutoThrottle(moods, c.Window)
	fmt.Printf("Throttle factor: %.1f (%s)\n", t.Factor, t.Reason)
	if t.AvgMood == nil {
		fmt.Println("No mood history. Log one with 'cadence mood log'.")
		return nil
	}
	fmt.Printf("Average mood:    %.2f\n", *t.AvgMood)
	fmt.Printf("Average energy:  %.2f\n", *t.AvgEnergy)

	if t.Factor < 1 {
		prefs, err := ctx.Store.GetPreference(ctx.OwnerID())
		if err != nil {
			return fmt.Errorf("failed to get preferences: %w", err)
		}
		opts, err := ctx.SchedulerOptions()
		if err != nil {
			return err
		}
		adjusted := adaptive.AdjustPreferencesForThrottle(prefs, t.Factor)
		fmt.Printf("\nWith 'plan --adaptive':\n")
		fmt.Printf("  Deep work capacity: %d → %d\n", prefs.DeepWorkCapacity, adjusted.DeepWorkCapacity)
		fmt.Printf("  Buffer minutes:     %d → %d\n", opts.BufferMinutes, adaptive.AdjustBufferMinutes(opts.BufferMinutes, t.Factor))
	}
	return nil
}

type InsightsCmd struct {
	Date   string `arg:"" help:"Day for meeting-aware suggestions (YYYY-MM-DD, today, tomorrow)." default:"today"`
	Window int    `short:"w" help:"Days of mood history to consider." default:"7"`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.SchedulerOptions()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, opts.Location)
	if err != nil {
		return err
	}

	in, err := planner.LoadInputs(ctx.Store, planner.Request{
		Owner:          ctx.OwnerID(),
		Date:           date,
		Options:        opts,
		MoodWindowDays: c.Window,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Last %d days:\n", c.Window)
	weekly := insights.ComputeWeeklyInsights(in.Moods, c.Window)
	if len(weekly) == 0 {
		fmt.Println("  No mood logs yet.")
	}
	printInsights(weekly)

	meetings, err := insights.ComputeMeetingAwareSuggestions(in.Constraints, date, opts.Location)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s:\n", date)
	if len(meetings) == 0 {
		fmt.Println("  No fixed meetings.")
	}
	printInsights(meetings)
	return nil
}

func printInsights(list []models.Insight) {
	for _, in := range list {
		if in.Metric == constants.MetricSuggestion {
			fmt.Printf("  → %s\n", in.Note)
			continue
		}
		fmt.Printf("  %-11s %6.2f\n", strings.ReplaceAll(string(in.Metric), "_", " "), in.Value)
	}
}

type WorkoutsCmd struct {
	WeekStart string `arg:"" optional:"" help:"First day of the week (YYYY-MM-DD). Defaults to next Monday."`
	Moderate  int    `help:"Moderate session length in minutes (20-60)." default:"30"`
	Strength  int    `help:"Strength session length in minutes (20-60)." default:"30"`
	Blocks    bool   `help:"Show each day as agenda blocks."`
}

func (c *WorkoutsCmd) Run(ctx *cli.Context) error {
	loc, err := ctx.Location()
	if err != nil {
		return err
	}
	start, err := ctx.WeekStart(c.WeekStart, loc)
	if err != nil {
		return err
	}
	prefs, err := ctx.Store.GetPreference(ctx.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	suggestions, err := health.SuggestWorkoutsForNextWeek(prefs, health.WorkoutOptions{
		WeekStart:              start.Format(constants.DateFormat),
		Location:               loc,
		ModerateSessionMinutes: c.Moderate,
		StrengthSessionMinutes: c.Strength,
	})
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		fmt.Println("No workouts suggested. Check your weekly activity targets with 'cadence prefs show'.")
		return nil
	}

	fmt.Printf("Suggested workouts for week of %s:\n\n", start.Format(constants.DateFormat))
	if !c.Blocks {
		for _, s := range suggestions {
			fmt.Printf("  %s %s  %3d min  %s\n", s.Date, s.StartTime, s.Minutes, s.Label)
		}
		return nil
	}

	seen := map[string]bool{}
	for _, s := range suggestions {
		if seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		blocks, err := health.ToBlocks(suggestions, s.Date)
		if err != nil {
			return err
		}
		fmt.Println(s.Date)
		fmt.Print(agenda.RenderBlocks(blocks))
	}
	return nil
}
