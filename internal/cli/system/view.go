package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/tui"
)

type ViewCmd struct {
	Date     string `arg:"" help:"Day to open (YYYY-MM-DD, today, tomorrow)." default:"today"`
	Adaptive bool   `help:"Throttle generated agendas from recent mood logs."`
}

func (c *ViewCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.SchedulerOptions()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, opts.Location)
	if err != nil {
		return err
	}
	today, err := ctx.ResolveDate("today", opts.Location)
	if err != nil {
		return err
	}

	// Perform automatic backup on viewer startup, since 's' writes agendas
	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.Store, ctx.Scheduler, tui.Config{
		Owner:    ctx.OwnerID(),
		Date:     date,
		Today:    today,
		Options:  opts,
		Adaptive: c.Adaptive,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("agenda viewer failed: %w", err)
	}
	return nil
}
