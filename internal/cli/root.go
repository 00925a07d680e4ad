package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/cadence/internal/backup"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
	"github.com/julianstephens/cadence/internal/utils"
)

type Context struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	Owner     string
	// Timezone overrides the stored timezone setting when non-empty
	Timezone string
	// Now is used to resolve relative dates; nil means time.Now
	Now func() time.Time
}

// OwnerID returns the owner commands act on
func (c *Context) OwnerID() string {
	if c.Owner == "" {
		return constants.DefaultOwner
	}
	return c.Owner
}

// CurrentTime returns the time relative dates are resolved against
func (c *Context) CurrentTime() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only SQLite stores are backed up.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Settings returns the stored settings with the timezone override applied
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings(c.OwnerID())
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}
	return settings, nil
}

// Location resolves the effective timezone
func (c *Context) Location() (*time.Location, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}
	return utils.LoadLocation(settings.Timezone)
}

// SchedulerOptions builds scheduling options from the stored settings
func (c *Context) SchedulerOptions() (scheduler.Options, error) {
	settings, err := c.Settings()
	if err != nil {
		return scheduler.Options{}, err
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return scheduler.Options{}, err
	}
	return scheduler.OptionsFromSettings(settings, loc), nil
}

// WeekStart resolves a YYYY-MM-DD week start in loc; empty means the Monday
// after the current time
func (c *Context) WeekStart(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return utils.NextISOWeekStart(c.CurrentTime().In(loc)), nil
	}
	day, err := utils.ParseDateInLocation(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week start %q, use YYYY-MM-DD", value)
	}
	return day, nil
}

// ResolveDate turns "today", "tomorrow", "yesterday" or YYYY-MM-DD into a
// date string in loc
func (c *Context) ResolveDate(value string, loc *time.Location) (string, error) {
	today := c.CurrentTime().In(loc)
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return today.Format(constants.DateFormat), nil
	case "tomorrow":
		return utils.AddDays(today, 1).Format(constants.DateFormat), nil
	case "yesterday":
		return utils.AddDays(today, -1).Format(constants.DateFormat), nil
	}
	day, err := utils.ParseDateInLocation(value, loc)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD, 'today' or 'tomorrow'", value)
	}
	return day.Format(constants.DateFormat), nil
}
