package backups

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/cadence/internal/backup"
	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store, Scheduler: scheduler.New()}, store
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, store := setupTestDB(t)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}

	backups, err := backup.NewManager(store.GetConfigPath()).ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("got %d backups, want 1", len(backups))
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, store := setupTestDB(t)

	mgr := backup.NewManager(store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	task := models.Task{
		ID:              "after",
		Owner:           constants.DefaultOwner,
		Title:           "Added after backup",
		Area:            constants.AreaWork,
		EstimateMinutes: 30,
		Importance:      5,
		EnergyType:      constants.EnergyShallow,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	cmd := &BackupRestoreCmd{BackupFile: filepath.Base(backupPath), Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("backup restore failed: %v", err)
	}

	if err := store.Load(); err != nil {
		t.Fatalf("Load after restore failed: %v", err)
	}
	tasks, err := store.GetAllTasks(constants.DefaultOwner)
	if err != nil {
		t.Fatalf("GetAllTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks after restore, want 0", len(tasks))
	}

	// The pre-restore database is kept as a backup too
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("got %d backups after restore, want 2", len(backups))
	}
}

func TestResolveBackupPath(t *testing.T) {
	dir := t.TempDir()
	mgr := backup.NewManager(filepath.Join(dir, "test.db"))
	store := sqlite.NewStore(filepath.Join(dir, "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"absolute", path, path, false},
		{"file name in backup dir", filepath.Base(path), path, false},
		{"missing absolute", filepath.Join(dir, "nope.db"), "", true},
		{"missing name", "nope.db", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveBackupPath(tt.in, mgr.GetBackupDir())
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveBackupPath(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("resolveBackupPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "not found") {
				t.Errorf("error = %v, want not found", err)
			}
		})
	}
}
