package weekly

import (
	"fmt"
	"time"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
	engine "github.com/julianstephens/cadence/internal/weekly"
)

// weekInputs resolves the week and loads the constraints that can touch it
func weekInputs(ctx *cli.Context, weekStart string) (time.Time, []models.Constraint, error) {
	loc, err := ctx.Location()
	if err != nil {
		return time.Time{}, nil, err
	}
	start, err := ctx.WeekStart(weekStart, loc)
	if err != nil {
		return time.Time{}, nil, err
	}
	end := utils.AddDays(start, constants.DaysPerWeek)
	pad := time.Duration(constants.MeetingPadMinutes) * time.Minute

	cs, err := ctx.Store.GetConstraintsInRange(ctx.OwnerID(), start.Add(-pad), end.Add(pad))
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to get constraints: %w", err)
	}
	return start, cs, nil
}

func bufferPercent(ctx *cli.Context, override *int) (int, error) {
	if override != nil {
		return *override, nil
	}
	settings, err := ctx.Settings()
	if err != nil {
		return 0, err
	}
	return settings.WeeklyBufferPercent, nil
}

func validateBuffer(buffer *int) error {
	if buffer != nil && (*buffer < 0 || *buffer > constants.MaxBufferPercent) {
		return fmt.Errorf("buffer must be between 0 and %d percent", constants.MaxBufferPercent)
	}
	return nil
}

type WeekCapacityCmd struct {
	WeekStart string `arg:"" optional:"" help:"First day of the week (YYYY-MM-DD). Defaults to next Monday."`
	Buffer    *int   `help:"Percent of free time held back. Defaults to the weekly_buffer_percent setting."`
}

func (c *WeekCapacityCmd) Validate() error {
	return validateBuffer(c.Buffer)
}

func (c *WeekCapacityCmd) Run(ctx *cli.Context) error {
	start, cs, err := weekInputs(ctx, c.WeekStart)
	if err != nil {
		return err
	}
	buffer, err := bufferPercent(ctx, c.Buffer)
	if err != nil {
		return err
	}

	capacity, err := engine.SuggestWeeklyCapacity(cs, engine.CapacityOptions{
		WeekStart:     start.Format(constants.DateFormat),
		BufferPercent: buffer,
		Location:      start.Location(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Capacity for week of %s (%d%% buffer):\n\n", capacity.WeekStart, buffer)
	for i, minutes := range capacity.DailyFreeMinutes {
		day := utils.AddDays(start, i)
		fmt.Printf("  %s %s  %s\n", day.Format("Mon"), day.Format(constants.DateFormat), formatMinutes(minutes))
	}
	fmt.Printf("\n  Total          %s\n", formatMinutes(capacity.TotalFreeMinutes))
	return nil
}

type WeekDistributeCmd struct {
	WeekStart string `arg:"" optional:"" help:"First day of the week (YYYY-MM-DD). Defaults to next Monday."`
	Buffer    *int   `help:"Percent of free time held back." default:"15"`
}

func (c *WeekDistributeCmd) Validate() error {
	return validateBuffer(c.Buffer)
}

func (c *WeekDistributeCmd) Run(ctx *cli.Context) error {
	start, cs, err := weekInputs(ctx, c.WeekStart)
	if err != nil {
		return err
	}
	buffer := constants.DefaultDistributionBufferPercent
	if c.Buffer != nil {
		buffer = *c.Buffer
	}

	tasks, err := ctx.Store.GetAllTasks(ctx.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	prefs, err := ctx.Store.GetPreference(ctx.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	dist, err := engine.DistributeTasksAcrossWeek(tasks, cs, prefs, engine.DistributeOptions{
		WeekStart:     start.Format(constants.DateFormat),
		BufferPercent: buffer,
		Location:      start.Location(),
	})
	if err != nil {
		return err
	}

	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}

	fmt.Printf("Distribution for week of %s:\n", dist.WeekStart)
	for _, day := range dist.Days {
		fmt.Printf("\n%s  (%s left)\n", day.Date, formatMinutes(day.RemainingMinutes))
		if len(day.Assigned) == 0 {
			fmt.Println("  -")
		}
		for _, a := range day.Assigned {
			fmt.Printf("  %-40s %4d min  %s\n", titles[a.TaskID], a.Minutes, a.Area)
		}
	}

	if len(dist.Unassigned) > 0 {
		fmt.Println("\nDoes not fit this week:")
		for _, a := range dist.Unassigned {
			fmt.Printf("  %-40s %4d min  %s\n", titles[a.TaskID], a.Minutes, a.Area)
		}
	}
	return nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%2dh %02dm", m/60, m%60)
}
