package tasks

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{
		Store:     store,
		Scheduler: scheduler.New(),
		Timezone:  "UTC",
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func TestTaskAddCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     TaskAddCmd
		wantErr bool
	}{
		{"valid", TaskAddCmd{Title: "Write", Estimate: 30, Importance: 5, Area: "work"}, false},
		{"zero estimate", TaskAddCmd{Title: "Write", Estimate: 0, Importance: 5, Area: "work"}, true},
		{"importance too high", TaskAddCmd{Title: "Write", Estimate: 30, Importance: 11, Area: "work"}, true},
		{"negative flexibility", TaskAddCmd{Title: "Write", Estimate: 30, Flexibility: -1, Area: "work"}, true},
		{"unknown area", TaskAddCmd{Title: "Write", Estimate: 30, Area: "hobby"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskAddCmd_Run(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &TaskAddCmd{
		Title:      "Write report",
		Estimate:   90,
		Importance: 8,
		Energy:     "deep",
		Area:       "work",
		Deadline:   "2025-01-03T17:00",
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}

	tasks, err := ctx.Store.GetAllTasks(constants.DefaultOwner)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.ID == "" {
		t.Error("expected generated ID")
	}
	if task.EnergyType != constants.EnergyDeep || task.EstimateMinutes != 90 {
		t.Errorf("unexpected task %+v", task)
	}
	if task.Deadline != "2025-01-03T17:00:00Z" {
		t.Errorf("expected deadline in UTC, got %s", task.Deadline)
	}
}

func TestTaskAddCmd_InvalidDeadline(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &TaskAddCmd{Title: "x", Estimate: 10, Energy: "shallow", Area: "work", Deadline: "friday"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid deadline")
	}
}

func TestTaskDeleteAndRestore(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	add := &TaskAddCmd{Title: "Email", Estimate: 20, Importance: 3, Energy: "shallow", Area: "admin"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("task add failed: %v", err)
	}
	tasks, _ := ctx.Store.GetAllTasks(constants.DefaultOwner)
	id := tasks[0].ID

	if err := (&TaskDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("task delete failed: %v", err)
	}
	if _, err := ctx.Store.GetTask(id); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again reports the missing task
	if err := (&TaskDeleteCmd{ID: id}).Run(ctx); err == nil {
		t.Error("expected error deleting a deleted task")
	}

	if err := (&TaskRestoreCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("task restore failed: %v", err)
	}
	if _, err := ctx.Store.GetTask(id); err != nil {
		t.Errorf("expected task after restore, got %v", err)
	}

	if err := (&TaskRestoreCmd{ID: id}).Run(ctx); err == nil {
		t.Error("expected error restoring an active task")
	}
}

func TestTaskListCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&TaskListCmd{}).Run(ctx); err != nil {
		t.Errorf("empty list failed: %v", err)
	}

	for _, title := range []string{"a", "b"} {
		add := &TaskAddCmd{Title: title, Estimate: 20, Importance: 3, Energy: "shallow", Area: "admin"}
		if err := add.Run(ctx); err != nil {
			t.Fatalf("task add failed: %v", err)
		}
	}
	if err := (&TaskListCmd{Ranked: true}).Run(ctx); err != nil {
		t.Errorf("ranked list failed: %v", err)
	}
}
