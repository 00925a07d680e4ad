package tasks

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/scheduler"
)

type TaskListCmd struct {
	Ranked bool `help:"Sort by scheduling priority instead of creation order."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks(ctx.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	if c.Ranked {
		prefs, err := ctx.Store.GetPreference(ctx.OwnerID())
		if err != nil {
			return fmt.Errorf("failed to get preferences: %w", err)
		}
		tasks = scheduler.RankTasks(tasks, prefs)
	}

	for _, t := range tasks {
		fmt.Printf("%-36s  %-8s %-9s %4d min  imp %2d  %s\n",
			t.ID, t.EnergyType, t.Area, t.EstimateMinutes, t.Importance, t.Title)
		if t.Deadline != "" {
			fmt.Printf("%-36s  due %s\n", "", t.Deadline)
		}
	}
	return nil
}
