package constraints

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
)

type ConstraintListCmd struct {
	From string `help:"First day to list (YYYY-MM-DD, today, tomorrow)."`
	To   string `help:"Last day to list, inclusive. Defaults to --from."`
}

func (c *ConstraintListCmd) Run(ctx *cli.Context) error {
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	var list []models.Constraint
	if c.From == "" && c.To == "" {
		list, err = ctx.Store.GetConstraints(ctx.OwnerID())
	} else {
		list, err = c.listRange(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get constraints: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No constraints found.")
		return nil
	}

	for _, con := range list {
		label := con.Label
		if label == "" {
			label = "-"
		}
		fmt.Printf("%-36s  %-8s %s  %s\n", con.ID, con.Kind, formatSpan(con, loc), label)
	}
	return nil
}

func (c *ConstraintListCmd) listRange(ctx *cli.Context) ([]models.Constraint, error) {
	loc, err := ctx.Location()
	if err != nil {
		return nil, err
	}
	fromValue, toValue := c.From, c.To
	if fromValue == "" {
		fromValue = toValue
	}
	if toValue == "" {
		toValue = fromValue
	}

	from, err := ctx.ResolveDate(fromValue, loc)
	if err != nil {
		return nil, err
	}
	to, err := ctx.ResolveDate(toValue, loc)
	if err != nil {
		return nil, err
	}
	fromDay, _ := utils.ParseDateInLocation(from, loc)
	toDay, _ := utils.ParseDateInLocation(to, loc)
	if toDay.Before(fromDay) {
		return nil, fmt.Errorf("--to (%s) is before --from (%s)", to, from)
	}

	start, _ := utils.DayBounds(fromDay)
	_, end := utils.DayBounds(toDay)
	return ctx.Store.GetConstraintsInRange(ctx.OwnerID(), start, end)
}
