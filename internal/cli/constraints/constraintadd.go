package constraints

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
	"github.com/julianstephens/cadence/internal/validation"
)

type ConstraintAddCmd struct {
	Kind   string `arg:"" help:"Constraint kind (sleep|fixed|commute|no-go)." enum:"sleep,fixed,commute,no-go"`
	Start  string `short:"s" help:"Start (YYYY-MM-DDTHH:MM in the configured timezone, or RFC3339)." required:""`
	End    string `short:"e" help:"End (YYYY-MM-DDTHH:MM in the configured timezone, or RFC3339)." required:""`
	Label  string `short:"l" help:"Optional label."`
	Repeat int    `short:"r" help:"Add the same span on this many consecutive days." default:"1"`
}

func (c *ConstraintAddCmd) Validate() error {
	if c.Repeat < 1 || c.Repeat > 366 {
		return fmt.Errorf("repeat must be between 1 and 366")
	}
	return nil
}

func (c *ConstraintAddCmd) Run(ctx *cli.Context) error {
	loc, err := ctx.Location()
	if err != nil {
		return err
	}
	start, err := utils.ParseTimestamp(c.Start, loc)
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := utils.ParseTimestamp(c.End, loc)
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}

	repeat := c.Repeat
	if repeat < 1 {
		repeat = 1
	}

	for i := 0; i < repeat; i++ {
		// Calendar days, so a repeated 23:00 sleep stays at 23:00 across DST
		constraint := models.Constraint{
			ID:    uuid.New().String(),
			Owner: ctx.OwnerID(),
			Kind:  constants.ConstraintKind(c.Kind),
			Start: start.In(loc).AddDate(0, 0, i),
			End:   end.In(loc).AddDate(0, 0, i),
			Label: c.Label,
		}
		if err := validation.CheckConstraint(constraint); err != nil {
			return fmt.Errorf("invalid constraint: %w", err)
		}
		if err := ctx.Store.AddConstraint(constraint); err != nil {
			return err
		}
		fmt.Printf("Added %s constraint: %s → %s (ID: %s)\n",
			constraint.Kind,
			constraint.Start.Format(constants.LocalDateTimeMinuteFormat),
			constraint.End.Format(constants.LocalDateTimeMinuteFormat),
			constraint.ID)
	}
	return nil
}

func formatSpan(c models.Constraint, loc *time.Location) string {
	return fmt.Sprintf("%s → %s",
		c.Start.In(loc).Format(constants.LocalDateTimeMinuteFormat),
		c.End.In(loc).Format(constants.LocalDateTimeMinuteFormat))
}
