package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/validation"
)

type ValidateCmd struct {
	Date string `arg:"" optional:"" help:"Also check the saved agenda for this date (YYYY-MM-DD, today)."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	owner := ctx.OwnerID()
	tasks, err := ctx.Store.GetAllTasks(owner)
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	cs, err := ctx.Store.GetConstraints(owner)
	if err != nil {
		return fmt.Errorf("failed to get constraints: %w", err)
	}

	validator := validation.New()
	result := validator.ValidateTasks(tasks)
	result.Merge(validator.ValidateConstraints(cs))

	if c.Date != "" {
		loc, err := ctx.Location()
		if err != nil {
			return err
		}
		date, err := ctx.ResolveDate(c.Date, loc)
		if err != nil {
			return err
		}
		a, err := ctx.Store.GetLatestAgenda(owner, date)
		switch {
		case err == nil:
			prefs, err := ctx.Store.GetPreference(owner)
			if err != nil {
				return fmt.Errorf("failed to get preferences: %w", err)
			}
			result.Merge(validator.ValidateAgenda(a.Blocks, prefs))
		case errors.Is(err, storage.ErrNotFound):
			fmt.Printf("No saved agenda for %s.\n", date)
		default:
			return fmt.Errorf("failed to get agenda: %w", err)
		}
	}

	fmt.Println(result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("validation found %d conflict(s)", len(result.Conflicts))
	}
	return nil
}
