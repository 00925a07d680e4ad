package moods

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/models"
)

type MoodLogCmd struct {
	Date   string `arg:"" help:"Date of the log (YYYY-MM-DD, today, yesterday)." default:"today"`
	Mood   *int   `short:"m" help:"Mood (0-10). Prompted when omitted."`
	Energy *int   `short:"e" help:"Energy (0-10). Prompted when omitted."`
}

func (c *MoodLogCmd) Validate() error {
	if c.Mood != nil {
		if err := checkScale("mood", *c.Mood); err != nil {
			return err
		}
	}
	if c.Energy != nil {
		if err := checkScale("energy", *c.Energy); err != nil {
			return err
		}
	}
	return nil
}

func checkScale(name string, v int) error {
	if v < 0 || v > 10 {
		return fmt.Errorf("%s must be between 0 and 10", name)
	}
	return nil
}

func (c *MoodLogCmd) Run(ctx *cli.Context) error {
	loc, err := ctx.Location()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, loc)
	if err != nil {
		return err
	}

	if c.Mood == nil || c.Energy == nil {
		if err := c.prompt(date); err != nil {
			return err
		}
	}

	log := models.MoodLog{
		ID:     uuid.New().String(),
		Owner:  ctx.OwnerID(),
		Date:   date,
		Mood:   *c.Mood,
		Energy: *c.Energy,
	}
	if err := ctx.Store.AddMoodLog(log); err != nil {
		return fmt.Errorf("failed to save mood log: %w", err)
	}

	fmt.Printf("Logged mood %d, energy %d for %s\n", log.Mood, log.Energy, date)
	return nil
}

// prompt fills the missing values with a form
func (c *MoodLogCmd) prompt(date string) error {
	var fields []huh.Field
	moodStr, energyStr := "", ""
	if c.Mood == nil {
		fields = append(fields, scaleInput("Mood", &moodStr))
	}
	if c.Energy == nil {
		fields = append(fields, scaleInput("Energy", &energyStr))
	}

	form := huh.NewForm(huh.NewGroup(fields...).
		Title(fmt.Sprintf("How was %s?", date)).
		Description("0 is the worst, 10 the best."))
	if err := form.Run(); err != nil {
		return err
	}

	if c.Mood == nil {
		v, _ := strconv.Atoi(strings.TrimSpace(moodStr)) // validated by the form
		c.Mood = &v
	}
	if c.Energy == nil {
		v, _ := strconv.Atoi(strings.TrimSpace(energyStr))
		c.Energy = &v
	}
	return nil
}

func scaleInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("0-10").
		Value(value).
		Validate(func(s string) error {
			v, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("enter a whole number")
			}
			return checkScale(strings.ToLower(title), v)
		})
}

type MoodListCmd struct {
	Limit int `short:"n" help:"Number of most recent logs to show." default:"14"`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	logs, err := ctx.Store.GetRecentMoodLogs(ctx.OwnerID(), c.Limit)
	if err != nil {
		return fmt.Errorf("failed to get mood logs: %w", err)
	}

	if len(logs) == 0 {
		fmt.Println("No mood logs found.")
		return nil
	}

	fmt.Println("Date        Mood  Energy")
	for _, l := range logs {
		fmt.Printf("%s  %4d  %6d\n", l.Date, l.Mood, l.Energy)
	}
	return nil
}
