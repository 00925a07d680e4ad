package prefs

import (
	"fmt"
	"sort"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
)

type PrefsShowCmd struct{}

func (c *PrefsShowCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetPreference(ctx.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	fmt.Printf("Preferences for %s:\n", ctx.OwnerID())
	fmt.Printf("  Deep Work Capacity:    %d blocks/day\n", p.DeepWorkCapacity)
	fmt.Printf("  Break Preference:      %d\n", p.BreakPreference)
	fmt.Printf("  Sleep Target:          %.1f h\n", p.SleepTargetHours)
	if p.WeeklyModerateMinutesTarget != nil {
		fmt.Printf("  Weekly Moderate:       %d min\n", *p.WeeklyModerateMinutesTarget)
	} else {
		fmt.Printf("  Weekly Moderate:       %d min (default)\n", constants.DefaultWeeklyModerateMinutes)
	}
	if p.WeeklyStrengthDaysTarget != nil {
		fmt.Printf("  Weekly Strength Days:  %d\n", *p.WeeklyStrengthDaysTarget)
	} else {
		fmt.Printf("  Weekly Strength Days:  %d (default)\n", constants.DefaultWeeklyStrengthDays)
	}

	fmt.Println("\nArea Weights:")
	for _, area := range constants.Areas {
		marker := ""
		if _, ok := p.AreaWeights[area]; !ok {
			marker = " (default)"
		}
		fmt.Printf("  %-10s %2d%s\n", area, p.AreaWeight(area), marker)
	}
	return nil
}

type PrefsSetCmd struct {
	AreaWeight       map[string]int `help:"Area weight as area=weight (0-10). Repeatable." mapsep:","`
	DeepCapacity     *int           `help:"Deep work blocks per day."`
	BreakPreference  *int           `help:"Break preference (0-10)."`
	SleepTarget      *float64       `help:"Sleep target in hours."`
	WeeklyModerate   *int           `help:"Weekly moderate activity target in minutes."`
	WeeklyStrength   *int           `help:"Weekly strength training days."`
	ResetAreaWeights bool           `help:"Clear all area weights before applying --area-weight."`
}

func (c *PrefsSetCmd) Validate() error {
	for area, weight := range c.AreaWeight {
		if !constants.IsValidArea(constants.Area(area)) {
			return fmt.Errorf("invalid area: %s", area)
		}
		if weight < 0 || weight > 10 {
			return fmt.Errorf("weight for %s must be between 0 and 10", area)
		}
	}
	if c.DeepCapacity != nil && *c.DeepCapacity < 0 {
		return fmt.Errorf("deep capacity cannot be negative")
	}
	if c.BreakPreference != nil && (*c.BreakPreference < 0 || *c.BreakPreference > 10) {
		return fmt.Errorf("break preference must be between 0 and 10")
	}
	if c.SleepTarget != nil && (*c.SleepTarget < 0 || *c.SleepTarget > 24) {
		return fmt.Errorf("sleep target must be between 0 and 24 hours")
	}
	if c.WeeklyModerate != nil && *c.WeeklyModerate < 0 {
		return fmt.Errorf("weekly moderate minutes cannot be negative")
	}
	if c.WeeklyStrength != nil && (*c.WeeklyStrength < 0 || *c.WeeklyStrength > 7) {
		return fmt.Errorf("weekly strength days must be between 0 and 7")
	}
	return nil
}

func (c *PrefsSetCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetPreference(ctx.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	p = p.Clone()
	p.Owner = ctx.OwnerID()

	updated := false
	if c.ResetAreaWeights {
		p.AreaWeights = map[constants.Area]int{}
		updated = true
	}
	if len(c.AreaWeight) > 0 {
		if p.AreaWeights == nil {
			p.AreaWeights = map[constants.Area]int{}
		}
		areas := make([]string, 0, len(c.AreaWeight))
		for area := range c.AreaWeight {
			areas = append(areas, area)
		}
		sort.Strings(areas)
		for _, area := range areas {
			p.AreaWeights[constants.Area(area)] = c.AreaWeight[area]
		}
		updated = true
	}
	if c.DeepCapacity != nil {
		p.DeepWorkCapacity = *c.DeepCapacity
		updated = true
	}
	if c.BreakPreference != nil {
		p.BreakPreference = *c.BreakPreference
		updated = true
	}
	if c.SleepTarget != nil {
		p.SleepTargetHours = *c.SleepTarget
		updated = true
	}
	if c.WeeklyModerate != nil {
		v := *c.WeeklyModerate
		p.WeeklyModerateMinutesTarget = &v
		updated = true
	}
	if c.WeeklyStrength != nil {
		v := *c.WeeklyStrength
		p.WeeklyStrengthDaysTarget = &v
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use 'prefs show' to view preferences or flags to update them.")
		return nil
	}

	if err := ctx.Store.SavePreference(p); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	fmt.Println("Preferences updated successfully.")
	return nil
}
