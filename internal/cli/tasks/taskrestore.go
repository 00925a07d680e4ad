package tasks

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
)

type TaskRestoreCmd struct {
	ID string `arg:"" help:"Task ID to restore."`
}

func (c *TaskRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreTask(c.ID); err != nil {
		return fmt.Errorf("failed to restore task: %w", err)
	}

	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to load restored task: %w", err)
	}

	fmt.Printf("Restored task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
