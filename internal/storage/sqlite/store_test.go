package sqlite

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoad_NotInitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "run 'cadence init' first") {
		t.Errorf("Load() error = %v, want not-initialized hint", err)
	}
}

func TestInitThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	// Running Init again on an existing database is a no-op migration
	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	again.Close()
}

func TestSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings(constants.DefaultOwner)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("GetSettings() = %+v, want defaults", settings)
	}

	settings.BufferMinutes = 0
	settings.Chronotype = string(constants.ChronotypeLate)
	if err := store.SaveSettings(constants.DefaultOwner, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings(constants.DefaultOwner)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got != settings {
		t.Errorf("GetSettings() = %+v, want %+v", got, settings)
	}

	other, err := store.GetSettings("someone-else")
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if other != models.DefaultSettings() {
		t.Errorf("settings leaked across owners: %+v", other)
	}
}

func TestSettings_UnsetValuesReadBackAsDefaults(t *testing.T) {
	store := setupTestStore(t)

	settings := models.DefaultSettings()
	settings.BreakThresholdMinutes = 0
	settings.Timezone = ""
	if err := store.SaveSettings(constants.DefaultOwner, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings(constants.DefaultOwner)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.BreakThresholdMinutes != constants.DefaultBreakThresholdMinutes {
		t.Errorf("BreakThresholdMinutes = %d, want %d", got.BreakThresholdMinutes, constants.DefaultBreakThresholdMinutes)
	}
	if got.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", got.Timezone, constants.DefaultTimezone)
	}
}

func TestTaskLifecycle(t *testing.T) {
	store := setupTestStore(t)

	task := models.Task{
		ID:              "task-1",
		Owner:           "u",
		Title:           "Write report",
		Area:            constants.AreaWork,
		EstimateMinutes: 90,
		Importance:      8,
		EnergyType:      constants.EnergyDeep,
		Flexibility:     3,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	got, err := store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got != task {
		t.Errorf("GetTask() = %+v, want %+v", got, task)
	}

	task.EstimateMinutes = 60
	if err := store.UpdateTask(task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	got, _ = store.GetTask(task.ID)
	if got.EstimateMinutes != 60 {
		t.Errorf("EstimateMinutes = %d, want 60", got.EstimateMinutes)
	}

	if err := store.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := store.GetTask(task.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetTask after delete error = %v, want ErrNotFound", err)
	}
	tasks, err := store.GetAllTasks("u")
	if err != nil {
		t.Fatalf("GetAllTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("GetAllTasks() returned %d tasks, want 0 after delete", len(tasks))
	}
	if err := store.DeleteTask(task.ID); err == nil {
		t.Error("Expected error deleting an already deleted task")
	}

	if err := store.RestoreTask(task.ID); err != nil {
		t.Fatalf("RestoreTask failed: %v", err)
	}
	if _, err := store.GetTask(task.ID); err != nil {
		t.Errorf("GetTask after restore failed: %v", err)
	}
	if err := store.RestoreTask(task.ID); err == nil {
		t.Error("Expected error restoring a live task")
	}
}

func TestUpdateTask_Missing(t *testing.T) {
	store := setupTestStore(t)
	err := store.UpdateTask(models.Task{ID: "nope", Title: "x", EstimateMinutes: 5})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateTask() error = %v, want ErrNotFound", err)
	}
}

func TestConstraintsInRange(t *testing.T) {
	store := setupTestStore(t)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("Asia/Tokyo timezone data unavailable")
	}

	day := time.Date(2025, 1, 2, 0, 0, 0, 0, tokyo)
	cs := []models.Constraint{
		{ID: "sleep", Owner: "u", Kind: constants.ConstraintSleep, Start: day.Add(-time.Hour), End: day.Add(7 * time.Hour)},
		{ID: "meeting", Owner: "u", Kind: constants.ConstraintFixed, Start: day.Add(12 * time.Hour), End: day.Add(13 * time.Hour), Label: "Standup"},
		{ID: "tomorrow", Owner: "u", Kind: constants.ConstraintFixed, Start: day.Add(30 * time.Hour), End: day.Add(31 * time.Hour)},
		{ID: "other-owner", Owner: "v", Kind: constants.ConstraintFixed, Start: day.Add(12 * time.Hour), End: day.Add(13 * time.Hour)},
	}
	for _, c := range cs {
		if err := store.AddConstraint(c); err != nil {
			t.Fatalf("AddConstraint(%s) failed: %v", c.ID, err)
		}
	}

	got, err := store.GetConstraintsInRange("u", day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("GetConstraintsInRange failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "sleep" || got[1].ID != "meeting" {
		t.Fatalf("GetConstraintsInRange() = %+v, want [sleep meeting]", got)
	}
	if !got[1].Start.Equal(cs[1].Start) || got[1].Label != "Standup" {
		t.Errorf("meeting round trip = %+v, want start %v", got[1], cs[1].Start)
	}

	all, err := store.GetConstraints("u")
	if err != nil {
		t.Fatalf("GetConstraints failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("GetConstraints() returned %d, want 3", len(all))
	}

	if err := store.DeleteConstraint("meeting"); err != nil {
		t.Fatalf("DeleteConstraint failed: %v", err)
	}
	if _, err := store.GetConstraint("meeting"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetConstraint after delete error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteConstraint("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteConstraint(missing) error = %v, want ErrNotFound", err)
	}
}

func TestPreference(t *testing.T) {
	store := setupTestStore(t)

	p, err := store.GetPreference("u")
	if err != nil {
		t.Fatalf("GetPreference failed: %v", err)
	}
	if p.DeepWorkCapacity != constants.DefaultDeepWorkCapacity || p.Owner != "u" {
		t.Errorf("GetPreference() = %+v, want defaults for u", p)
	}

	moderate := 120
	p.AreaWeights[constants.AreaWork] = 9
	p.DeepWorkCapacity = 3
	p.WeeklyModerateMinutesTarget = &moderate
	if err := store.SavePreference(p); err != nil {
		t.Fatalf("SavePreference failed: %v", err)
	}
	// Saving twice upserts
	if err := store.SavePreference(p); err != nil {
		t.Fatalf("second SavePreference failed: %v", err)
	}

	got, err := store.GetPreference("u")
	if err != nil {
		t.Fatalf("GetPreference failed: %v", err)
	}
	if got.AreaWeight(constants.AreaWork) != 9 || got.DeepWorkCapacity != 3 {
		t.Errorf("GetPreference() = %+v", got)
	}
	if got.WeeklyModerateMinutesTarget == nil || *got.WeeklyModerateMinutesTarget != 120 {
		t.Errorf("WeeklyModerateMinutesTarget = %v, want 120", got.WeeklyModerateMinutesTarget)
	}
	if got.WeeklyStrengthDaysTarget != nil {
		t.Errorf("WeeklyStrengthDaysTarget = %v, want nil", *got.WeeklyStrengthDaysTarget)
	}
}

func TestMoodLogs(t *testing.T) {
	store := setupTestStore(t)

	logs := []models.MoodLog{
		{ID: "m1", Owner: "u", Date: "2025-01-01", Mood: 5, Energy: 5},
		{ID: "m2", Owner: "u", Date: "2025-01-02", Mood: 6, Energy: 4},
		{ID: "m3", Owner: "u", Date: "2025-01-03", Mood: 7, Energy: 3},
		{ID: "m4", Owner: "u", Date: "2025-01-02", Mood: 2, Energy: 2},
	}
	for _, m := range logs {
		if err := store.AddMoodLog(m); err != nil {
			t.Fatalf("AddMoodLog(%s) failed: %v", m.ID, err)
		}
	}

	got, err := store.GetRecentMoodLogs("u", 2)
	if err != nil {
		t.Fatalf("GetRecentMoodLogs failed: %v", err)
	}
	if len(got) != 2 || got[0].Date != "2025-01-03" || got[1].Date != "2025-01-02" {
		t.Fatalf("GetRecentMoodLogs() = %+v, want newest two", got)
	}
	if got[1].Mood != 2 {
		t.Errorf("same-date log was not replaced: mood = %d, want 2", got[1].Mood)
	}
}

func TestAgendaRevisions(t *testing.T) {
	store := setupTestStore(t)

	taskID := "t1"
	first, err := store.SaveAgenda(models.Agenda{
		Owner:      "u",
		Date:       "2025-01-02",
		Confidence: 0.8,
		Blocks: []models.ScheduledBlock{
			{TaskID: &taskID, Type: constants.BlockDeep, StartMin: 420, EndMin: 510, Label: "Deep"},
		},
	})
	if err != nil {
		t.Fatalf("SaveAgenda failed: %v", err)
	}
	if first.Revision != 1 || first.CreatedAt == "" {
		t.Errorf("first agenda = %+v, want revision 1 with created_at", first)
	}

	second, err := store.SaveAgenda(models.Agenda{Owner: "u", Date: "2025-01-02", Confidence: 0.6})
	if err != nil {
		t.Fatalf("SaveAgenda failed: %v", err)
	}
	if second.Revision != 2 {
		t.Errorf("second revision = %d, want 2", second.Revision)
	}

	latest, err := store.GetLatestAgenda("u", "2025-01-02")
	if err != nil {
		t.Fatalf("GetLatestAgenda failed: %v", err)
	}
	if latest.Revision != 2 || len(latest.Blocks) != 0 {
		t.Errorf("latest = %+v, want revision 2 with no blocks", latest)
	}

	old, err := store.GetAgendaRevision("u", "2025-01-02", 1)
	if err != nil {
		t.Fatalf("GetAgendaRevision failed: %v", err)
	}
	if len(old.Blocks) != 1 || old.Blocks[0].TaskID == nil || *old.Blocks[0].TaskID != "t1" {
		t.Errorf("revision 1 blocks = %+v", old.Blocks)
	}

	if _, err := store.GetLatestAgenda("u", "2025-01-03"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetLatestAgenda(missing) error = %v, want ErrNotFound", err)
	}

	if _, err := store.SaveAgenda(models.Agenda{Owner: "u", Date: "2025-01-01", Confidence: 1}); err != nil {
		t.Fatalf("SaveAgenda failed: %v", err)
	}
	all, err := store.GetAllAgendas("u")
	if err != nil {
		t.Fatalf("GetAllAgendas failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetAllAgendas returned %d agendas, want 3", len(all))
	}
	if all[0].Date != "2025-01-01" || all[2].Revision != 2 {
		t.Errorf("GetAllAgendas order = %s/%d ... %s/%d", all[0].Date, all[0].Revision, all[2].Date, all[2].Revision)
	}
}
