package constraints

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
)

type ConstraintDeleteCmd struct {
	ID string `arg:"" help:"Constraint ID to delete."`
}

func (c *ConstraintDeleteCmd) Run(ctx *cli.Context) error {
	con, err := ctx.Store.GetConstraint(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find constraint with ID %s: %w", c.ID, err)
	}

	if err := ctx.Store.DeleteConstraint(c.ID); err != nil {
		return fmt.Errorf("failed to delete constraint: %w", err)
	}

	fmt.Printf("Deleted %s constraint (ID: %s)\n", con.Kind, c.ID)
	return nil
}
