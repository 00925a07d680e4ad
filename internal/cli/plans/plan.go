package plans

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/planner"
	"github.com/julianstephens/cadence/internal/snapshot"
	"github.com/julianstephens/cadence/internal/tui/components/agenda"
	"github.com/julianstephens/cadence/internal/validation"
)

type PlanCmd struct {
	Date       string `arg:"" help:"Date to plan (YYYY-MM-DD, today, tomorrow)." default:"today"`
	Adaptive   bool   `help:"Throttle capacity and buffers from recent mood logs."`
	Chronotype string `help:"Override the chronotype setting (early|intermediate|late|none)."`
	Buffer     *int   `help:"Override the buffer minutes setting."`
	MoodWindow int    `help:"Days of mood history used by --adaptive." default:"7"`
	Snapshot   string `help:"Plan from a JSON or YAML snapshot file instead of the database." type:"existingfile"`
	Save       bool   `help:"Save the agenda as a new revision."`
	Yes        bool   `short:"y" help:"Save without asking for confirmation."`
	JSON       bool   `name:"json" help:"Print the agenda as JSON."`
}

func (c *PlanCmd) Validate() error {
	switch constants.Chronotype(c.Chronotype) {
	case "", "none", constants.ChronotypeEarly, constants.ChronotypeIntermediate, constants.ChronotypeLate:
	default:
		return fmt.Errorf("invalid chronotype: %s", c.Chronotype)
	}
	if c.Buffer != nil && *c.Buffer < 0 {
		return fmt.Errorf("buffer cannot be negative")
	}
	if c.Save && c.Snapshot != "" {
		return fmt.Errorf("--save cannot be combined with --snapshot")
	}
	return nil
}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.SchedulerOptions()
	if err != nil {
		return err
	}

	owner := ctx.OwnerID()
	var (
		in        planner.Inputs
		snap      *snapshot.Snapshot
		inputsSet bool
	)
	if c.Snapshot != "" {
		snap, err = snapshot.Load(c.Snapshot)
		if err != nil {
			return err
		}
		owner = snap.Owner
		opts.Location = snap.Location
		in = planner.Inputs{
			Tasks:       snap.Tasks,
			Constraints: snap.Constraints,
			Preference:  snap.Preference,
			Moods:       snap.Moods,
		}
		inputsSet = true
	}

	date, err := ctx.ResolveDate(c.Date, opts.Location)
	if err != nil {
		return err
	}

	switch c.Chronotype {
	case "":
	case "none":
		opts.Chronotype = ""
	default:
		opts.Chronotype = constants.Chronotype(c.Chronotype)
	}
	if c.Buffer != nil {
		opts.BufferMinutes = *c.Buffer
	}

	req := planner.Request{
		Owner:          owner,
		Date:           date,
		Options:        opts,
		Adaptive:       c.Adaptive,
		MoodWindowDays: c.MoodWindow,
	}
	if !inputsSet {
		in, err = planner.LoadInputs(ctx.Store, req)
		if err != nil {
			return err
		}
	}

	res, err := planner.Plan(ctx.Scheduler, in, req)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Agenda); err != nil {
			return err
		}
	} else {
		printResult(res, in.Tasks)
	}

	if !c.Save {
		return nil
	}

	ok, err := cli.Confirm(fmt.Sprintf("Save agenda for %s?", date), "A new revision is stored; earlier ones are kept.", c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Agenda not saved.")
		return nil
	}

	// Perform automatic backup before writing the agenda
	ctx.PerformAutomaticBackup()

	saved, err := ctx.Store.SaveAgenda(res.Agenda)
	if err != nil {
		return fmt.Errorf("failed to save agenda: %w", err)
	}
	fmt.Printf("Saved agenda for %s (revision %d)\n", saved.Date, saved.Revision)
	return nil
}

func printResult(res planner.Result, tasks []models.Task) {
	fmt.Printf("Agenda for %s:\n\n", res.Agenda.Date)
	if len(res.Agenda.Blocks) == 0 {
		fmt.Println("  Nothing scheduled for this day")
	} else {
		fmt.Print(agenda.RenderBlocks(res.Agenda.Blocks))
	}

	fmt.Printf("\nConfidence: %.2f\n", res.Agenda.Confidence)
	if res.Throttle != nil {
		fmt.Printf("Throttle:   %.1f (%s)\n", res.Throttle.Factor, res.Throttle.Reason)
	}

	if skipped := unscheduled(res.Agenda.Blocks, tasks); len(skipped) > 0 {
		fmt.Println("\nNot scheduled:")
		for _, t := range skipped {
			fmt.Printf("  - %s (%d min, %s)\n", t.Title, t.EstimateMinutes, t.EnergyType)
		}
	}

	report := validation.New().ValidateAgenda(res.Agenda.Blocks, res.Preference)
	if report.HasConflicts() {
		fmt.Println("\n⚠️  Validation warnings:")
		for _, conflict := range report.Conflicts {
			fmt.Printf("  - %s\n", conflict.Description)
		}
	}
}

// unscheduled returns the tasks with no block, in input order
func unscheduled(blocks []models.ScheduledBlock, tasks []models.Task) []models.Task {
	placed := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if b.TaskID != nil {
			placed[*b.TaskID] = true
		}
	}
	var out []models.Task
	for _, t := range tasks {
		if !placed[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
