package settings

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	BufferMinutes         *int    `help:"Minutes kept free after every placed block."`
	BreakThresholdMinutes *int    `help:"Blocks at least this long get a trailing break."`
	BreakMinutes          *int    `help:"Length of an inserted break in minutes."`
	Chronotype            *string `help:"Chronotype (early|intermediate|late, or 'none' to clear)."`
	Timezone              *string `help:"IANA timezone name, or 'Local'."`
	WeeklyBufferPercent   *int    `help:"Share of weekly free time held back (0-50)."`
}

func (c *SettingsCmd) Validate() error {
	for name, v := range map[string]*int{
		"buffer minutes":          c.BufferMinutes,
		"break threshold minutes": c.BreakThresholdMinutes,
		"break minutes":           c.BreakMinutes,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	if c.WeeklyBufferPercent != nil && (*c.WeeklyBufferPercent < 0 || *c.WeeklyBufferPercent > constants.MaxBufferPercent) {
		return fmt.Errorf("weekly buffer percent must be between 0 and %d", constants.MaxBufferPercent)
	}
	if c.Chronotype != nil {
		switch constants.Chronotype(*c.Chronotype) {
		case constants.ChronotypeEarly, constants.ChronotypeIntermediate, constants.ChronotypeLate, "none":
		default:
			return fmt.Errorf("invalid chronotype: %s", *c.Chronotype)
		}
	}
	if c.Timezone != nil && !utils.ValidateTimezone(*c.Timezone) {
		return fmt.Errorf("invalid timezone: %s", *c.Timezone)
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings(ctx.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		chronotype := settings.Chronotype
		if chronotype == "" {
			chronotype = "none"
		}
		fmt.Println("Current Settings:")
		fmt.Printf("  Buffer:                %d min\n", settings.BufferMinutes)
		fmt.Printf("  Break Threshold:       %d min\n", settings.BreakThresholdMinutes)
		fmt.Printf("  Break Length:          %d min\n", settings.BreakMinutes)
		fmt.Printf("  Chronotype:            %s\n", chronotype)
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Weekly Buffer:         %d%%\n", settings.WeeklyBufferPercent)
		return nil
	}

	updated := false
	if c.BufferMinutes != nil {
		settings.BufferMinutes = *c.BufferMinutes
		updated = true
	}
	if c.BreakThresholdMinutes != nil {
		settings.BreakThresholdMinutes = *c.BreakThresholdMinutes
		updated = true
	}
	if c.BreakMinutes != nil {
		settings.BreakMinutes = *c.BreakMinutes
		updated = true
	}
	if c.Chronotype != nil {
		settings.Chronotype = *c.Chronotype
		if settings.Chronotype == "none" {
			settings.Chronotype = ""
		}
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.WeeklyBufferPercent != nil {
		settings.WeeklyBufferPercent = *c.WeeklyBufferPercent
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(ctx.OwnerID(), settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
