package plans

import (
	"errors"
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/tui/components/agenda"
)

type AgendaShowCmd struct {
	Date     string `arg:"" help:"Date of the agenda (YYYY-MM-DD, today, tomorrow)." default:"today"`
	Revision int    `short:"r" help:"Revision to show. Defaults to the latest."`
}

func (c *AgendaShowCmd) Run(ctx *cli.Context) error {
	loc, err := ctx.Location()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, loc)
	if err != nil {
		return err
	}

	var a models.Agenda
	if c.Revision > 0 {
		a, err = ctx.Store.GetAgendaRevision(ctx.OwnerID(), date, c.Revision)
	} else {
		a, err = ctx.Store.GetLatestAgenda(ctx.OwnerID(), date)
	}
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Printf("No saved agenda for %s. Run 'cadence plan %s --save' to create one.\n", date, date)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get agenda: %w", err)
	}

	fmt.Println(agenda.Header(a, true))
	fmt.Println()
	if len(a.Blocks) == 0 {
		fmt.Println("  Nothing scheduled for this day")
		return nil
	}
	fmt.Print(agenda.RenderBlocks(a.Blocks))
	return nil
}
