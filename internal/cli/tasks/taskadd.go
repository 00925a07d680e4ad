package tasks

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
	"github.com/julianstephens/cadence/internal/validation"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Estimate    int    `short:"d" help:"Estimated duration in minutes." required:""`
	Importance  int    `short:"i" help:"Importance (0-10)." default:"5"`
	Energy      string `short:"e" help:"Energy type (deep|shallow)." default:"shallow" enum:"deep,shallow"`
	Area        string `short:"a" help:"Life area (work|health|social|learning|admin|creative|recovery)." default:"work"`
	Flexibility int    `help:"Flexibility (0-10)." default:"5"`
	Deadline    string `help:"Deadline (YYYY-MM-DDTHH:MM or RFC3339)."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Estimate <= 0 {
		return fmt.Errorf("estimate must be greater than zero")
	}
	if c.Importance < 0 || c.Importance > 10 {
		return fmt.Errorf("importance must be between 0 and 10")
	}
	if c.Flexibility < 0 || c.Flexibility > 10 {
		return fmt.Errorf("flexibility must be between 0 and 10")
	}
	if !constants.IsValidArea(constants.Area(c.Area)) {
		return fmt.Errorf("invalid area: %s", c.Area)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	task := models.Task{
		ID:              uuid.New().String(),
		Owner:           ctx.OwnerID(),
		Title:           c.Title,
		Area:            constants.Area(c.Area),
		EstimateMinutes: c.Estimate,
		Importance:      c.Importance,
		EnergyType:      constants.EnergyType(c.Energy),
		Flexibility:     c.Flexibility,
	}

	if c.Deadline != "" {
		loc, err := ctx.Location()
		if err != nil {
			return err
		}
		deadline, err := utils.ParseTimestamp(c.Deadline, loc)
		if err != nil {
			return fmt.Errorf("invalid deadline: %w", err)
		}
		task.Deadline = utils.FormatTimestamp(deadline)
	}

	if err := validation.CheckTask(task); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
