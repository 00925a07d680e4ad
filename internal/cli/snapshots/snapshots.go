package snapshots

import (
	"errors"
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/snapshot"
	"github.com/julianstephens/cadence/internal/storage"
)

// exportMoodLimit bounds the mood history written to a snapshot
const exportMoodLimit = 100000

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Snapshot file (.json, .yaml or .yml)."`
	As   string `help:"Import under this owner instead of the snapshot's."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	snap, err := snapshot.Load(c.File)
	if err != nil {
		return err
	}
	owner := snap.Owner
	if c.As != "" {
		owner = c.As
	}

	ctx.PerformAutomaticBackup()

	snap.Preference.Owner = owner
	if err := ctx.Store.SavePreference(snap.Preference); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	var added, updated int
	for _, task := range snap.Tasks {
		task.Owner = owner
		_, err := ctx.Store.GetTask(task.ID)
		switch {
		case err == nil:
			if err := ctx.Store.UpdateTask(task); err != nil {
				return fmt.Errorf("failed to update task %q: %w", task.Title, err)
			}
			updated++
		case errors.Is(err, storage.ErrNotFound):
			if err := ctx.Store.AddTask(task); err != nil {
				return fmt.Errorf("failed to add task %q: %w", task.Title, err)
			}
			added++
		default:
			return fmt.Errorf("failed to look up task %q: %w", task.Title, err)
		}
	}

	var constraints int
	for _, con := range snap.Constraints {
		con.Owner = owner
		if _, err := ctx.Store.GetConstraint(con.ID); err == nil {
			logger.Debug("Skipping existing constraint", "id", con.ID)
			continue
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to look up constraint %s: %w", con.ID, err)
		}
		if err := ctx.Store.AddConstraint(con); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", con.ID, err)
		}
		constraints++
	}

	for _, m := range snap.Moods {
		m.Owner = owner
		if err := ctx.Store.AddMoodLog(m); err != nil {
			return fmt.Errorf("failed to save mood log for %s: %w", m.Date, err)
		}
	}

	fmt.Printf("✓ Imported snapshot for %s\n", owner)
	fmt.Printf("  Tasks: %d added, %d updated\n", added, updated)
	fmt.Printf("  Constraints: %d added\n", constraints)
	fmt.Printf("  Mood logs: %d\n", len(snap.Moods))
	return nil
}

type ExportCmd struct {
	File string `arg:"" help:"Destination file; .yaml or .yml writes YAML, anything else JSON."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	owner := ctx.OwnerID()
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	pref, err := ctx.Store.GetPreference(owner)
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	tasks, err := ctx.Store.GetAllTasks(owner)
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	cs, err := ctx.Store.GetConstraints(owner)
	if err != nil {
		return fmt.Errorf("failed to get constraints: %w", err)
	}
	moods, err := ctx.Store.GetRecentMoodLogs(owner, exportMoodLimit)
	if err != nil {
		return fmt.Errorf("failed to get mood logs: %w", err)
	}

	snap := &snapshot.Snapshot{
		Owner:       owner,
		Timezone:    settings.Timezone,
		Location:    loc,
		Preference:  pref,
		Tasks:       tasks,
		Constraints: cs,
		Moods:       moods,
	}
	if err := snapshot.Save(c.File, snap); err != nil {
		return err
	}

	fmt.Printf("✓ Exported %d tasks, %d constraints and %d mood logs to %s\n", len(tasks), len(cs), len(moods), c.File)
	return nil
}
