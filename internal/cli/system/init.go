package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/storage/postgres"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
)

// migrateMoodLimit bounds the mood history copied by --source
const migrateMoodLimit = 100000

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete existing database
	if c.Force {
		if _, ok := ctx.Store.(*sqlite.Store); !ok {
			return fmt.Errorf("--force is only supported for SQLite databases")
		}
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to release the file
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized cadence storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if postgres.IsConnString(sourcePath) {
		if valid, err := postgres.ValidateConnString(sourcePath); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		sourceStore = postgres.New(sourcePath)
	} else {
		sourceStore = sqlite.NewStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	owner := ctx.OwnerID()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings(owner)
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(owner, settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating preferences...")
	pref, err := sourceStore.GetPreference(owner)
	if err != nil {
		return fmt.Errorf("failed to get preferences from source: %w", err)
	}
	pref.Owner = owner
	if err := ctx.Store.SavePreference(pref); err != nil {
		return fmt.Errorf("failed to save preferences to destination: %w", err)
	}

	fmt.Println("  Migrating tasks...")
	tasks, err := sourceStore.GetAllTasks(owner)
	if err != nil {
		return fmt.Errorf("failed to get tasks from source: %w", err)
	}
	for _, task := range tasks {
		if err := ctx.Store.AddTask(task); err != nil {
			return fmt.Errorf("failed to add task %s: %w", task.ID, err)
		}
	}
	fmt.Printf("    Migrated %d tasks\n", len(tasks))

	fmt.Println("  Migrating constraints...")
	cs, err := sourceStore.GetConstraints(owner)
	if err != nil {
		return fmt.Errorf("failed to get constraints from source: %w", err)
	}
	for _, con := range cs {
		if err := ctx.Store.AddConstraint(con); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", con.ID, err)
		}
	}
	fmt.Printf("    Migrated %d constraints\n", len(cs))

	fmt.Println("  Migrating mood logs...")
	moods, err := sourceStore.GetRecentMoodLogs(owner, migrateMoodLimit)
	if err != nil {
		return fmt.Errorf("failed to get mood logs from source: %w", err)
	}
	for _, m := range moods {
		if err := ctx.Store.AddMoodLog(m); err != nil {
			return fmt.Errorf("failed to add mood log for %s: %w", m.Date, err)
		}
	}
	fmt.Printf("    Migrated %d mood logs\n", len(moods))

	fmt.Println("  Migrating agendas...")
	agendas, err := sourceStore.GetAllAgendas(owner)
	if err != nil {
		return fmt.Errorf("failed to get agendas from source: %w", err)
	}
	for _, a := range agendas {
		if _, err := ctx.Store.SaveAgenda(a); err != nil {
			return fmt.Errorf("failed to save agenda for %s revision %d: %w", a.Date, a.Revision, err)
		}
	}
	fmt.Printf("    Migrated %d agendas\n", len(agendas))

	return nil
}
