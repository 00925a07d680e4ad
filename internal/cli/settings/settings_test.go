package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/scheduler"
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
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		List: true,
	}

	err := cmd.Run(ctx)
	if err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		BufferMinutes: intPtr(0),
		Chronotype:    strPtr("early"),
		Timezone:      strPtr("UTC"),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings(constants.DefaultOwner)
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.BufferMinutes != 0 {
		t.Errorf("expected stored zero buffer, got %d", settings.BufferMinutes)
	}
	if settings.Chronotype != "early" || settings.Timezone != "UTC" {
		t.Errorf("unexpected settings %+v", settings)
	}
	if settings.BreakMinutes != constants.DefaultBreakMinutes {
		t.Errorf("untouched break minutes changed to %d", settings.BreakMinutes)
	}

	reset := &SettingsCmd{Chronotype: strPtr("none")}
	if err := reset.Run(ctx); err != nil {
		t.Fatalf("settings clear failed: %v", err)
	}
	settings, _ = ctx.Store.GetSettings(constants.DefaultOwner)
	if settings.Chronotype != "" {
		t.Errorf("expected cleared chronotype, got %q", settings.Chronotype)
	}
}

func TestSettingsCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SettingsCmd
		wantErr bool
	}{
		{"empty", SettingsCmd{}, false},
		{"negative buffer", SettingsCmd{BufferMinutes: intPtr(-5)}, true},
		{"negative break", SettingsCmd{BreakMinutes: intPtr(-1)}, true},
		{"weekly buffer too high", SettingsCmd{WeeklyBufferPercent: intPtr(60)}, true},
		{"bad chronotype", SettingsCmd{Chronotype: strPtr("owl")}, true},
		{"bad timezone", SettingsCmd{Timezone: strPtr("Mars/Olympus")}, true},
		{"local timezone", SettingsCmd{Timezone: strPtr("Local")}, false},
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
