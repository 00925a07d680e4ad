package moods

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return &cli.Context{
		Store:     store,
		Scheduler: scheduler.New(),
		Timezone:  "UTC",
		Now: func() time.Time {
			return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
		},
	}
}

func intPtr(v int) *int { return &v }

func TestMoodLogCmd_Run(t *testing.T) {
	ctx := setupTestDB(t)

	logs := []MoodLogCmd{
		{Date: "yesterday", Mood: intPtr(6), Energy: intPtr(5)},
		{Date: "today", Mood: intPtr(4), Energy: intPtr(3)},
		// Second log for the same day replaces the first
		{Date: "2025-01-10", Mood: intPtr(7), Energy: intPtr(8)},
	}
	for _, cmd := range logs {
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("mood log failed: %v", err)
		}
	}

	got, err := ctx.Store.GetRecentMoodLogs(constants.DefaultOwner, 10)
	if err != nil {
		t.Fatalf("failed to get moods: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(got))
	}
	if got[0].Date != "2025-01-10" || got[0].Mood != 7 || got[0].Energy != 8 {
		t.Errorf("unexpected latest log %+v", got[0])
	}
	if got[1].Date != "2025-01-09" {
		t.Errorf("expected yesterday's log second, got %s", got[1].Date)
	}

	if err := (&MoodListCmd{Limit: 5}).Run(ctx); err != nil {
		t.Errorf("mood list failed: %v", err)
	}
}

func TestMoodLogCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     MoodLogCmd
		wantErr bool
	}{
		{"omitted", MoodLogCmd{}, false},
		{"in range", MoodLogCmd{Mood: intPtr(0), Energy: intPtr(10)}, false},
		{"mood too high", MoodLogCmd{Mood: intPtr(11)}, true},
		{"negative energy", MoodLogCmd{Energy: intPtr(-1)}, true},
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

func TestMoodLogCmd_InvalidDate(t *testing.T) {
	ctx := setupTestDB(t)
	cmd := &MoodLogCmd{Date: "someday", Mood: intPtr(5), Energy: intPtr(5)}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestMoodListCmd_Empty(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&MoodListCmd{Limit: 5}).Run(ctx); err != nil {
		t.Errorf("mood list failed: %v", err)
	}
}
