package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/validation"
)

type fakeSource struct {
	tasks       []models.Task
	constraints []models.Constraint
	pref        models.Preference
	moods       []models.MoodLog

	from, to  time.Time
	moodLimit int
	err       error
}

func (f *fakeSource) GetAllTasks(owner string) ([]models.Task, error) {
	return f.tasks, f.err
}

func (f *fakeSource) GetConstraintsInRange(owner string, from, to time.Time) ([]models.Constraint, error) {
	f.from, f.to = from, to
	return f.constraints, nil
}

func (f *fakeSource) GetPreference(owner string) (models.Preference, error) {
	return f.pref, nil
}

func (f *fakeSource) GetRecentMoodLogs(owner string, limit int) ([]models.MoodLog, error) {
	f.moodLimit = limit
	return f.moods, nil
}

func utc(value string) time.Time {
	ts, _ := time.ParseInLocation(constants.LocalDateTimeFormat, value, time.UTC)
	return ts
}

func newSource() *fakeSource {
	return &fakeSource{
		tasks: []models.Task{
			{ID: "deep", Title: "deep", Area: constants.AreaWork, EstimateMinutes: 90, Importance: 5, EnergyType: constants.EnergyDeep},
			{ID: "shallow", Title: "shallow", Area: constants.AreaWork, EstimateMinutes: 30, Importance: 5, EnergyType: constants.EnergyShallow},
		},
		constraints: []models.Constraint{
			{ID: "s", Kind: constants.ConstraintSleep, Start: utc("2025-01-02T00:00:00"), End: utc("2025-01-02T07:00:00")},
			{ID: "m", Kind: constants.ConstraintFixed, Start: utc("2025-01-02T12:00:00"), End: utc("2025-01-02T13:00:00")},
		},
		pref: models.Preference{
			AreaWeights:      map[constants.Area]int{constants.AreaWork: 7},
			DeepWorkCapacity: 2,
		},
	}
}

func request(adaptive bool) Request {
	opts := scheduler.DefaultOptions()
	opts.Location = time.UTC
	return Request{Owner: "u", Date: "2025-01-02", Options: opts, Adaptive: adaptive}
}

func TestPlanFromSource(t *testing.T) {
	src := newSource()

	res, err := PlanFromSource(src, scheduler.New(), request(false))
	if err != nil {
		t.Fatalf("PlanFromSource failed: %v", err)
	}

	if len(res.Agenda.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(res.Agenda.Blocks))
	}
	if res.Agenda.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", res.Agenda.Confidence)
	}
	if res.Requested != 120 {
		t.Errorf("Requested = %d, want 120", res.Requested)
	}
	if res.Throttle != nil {
		t.Errorf("Throttle = %+v, want nil without --adaptive", res.Throttle)
	}
	if res.Agenda.Owner != "u" || res.Agenda.Date != "2025-01-02" {
		t.Errorf("Agenda = %+v", res.Agenda)
	}

	wantFrom := utc("2025-01-01T23:00:00")
	wantTo := utc("2025-01-03T01:00:00")
	if !src.from.Equal(wantFrom) || !src.to.Equal(wantTo) {
		t.Errorf("constraint range = [%v, %v), want [%v, %v)", src.from, src.to, wantFrom, wantTo)
	}
	if src.moodLimit != 7 {
		t.Errorf("mood limit = %d, want 7", src.moodLimit)
	}
}

func TestPlanFromSource_Adaptive(t *testing.T) {
	src := newSource()
	src.moods = []models.MoodLog{
		{Date: "2025-01-01", Mood: 3, Energy: 6},
		{Date: "2024-12-31", Mood: 3, Energy: 6},
	}

	res, err := PlanFromSource(src, scheduler.New(), request(true))
	if err != nil {
		t.Fatalf("PlanFromSource failed: %v", err)
	}
	if res.Throttle == nil || res.Throttle.Reason != constants.ThrottleLowMood {
		t.Fatalf("Throttle = %+v, want low_mood", res.Throttle)
	}
	if res.Preference.DeepWorkCapacity != 1 {
		t.Errorf("DeepWorkCapacity = %d, want 1", res.Preference.DeepWorkCapacity)
	}
	if res.Options.BufferMinutes != 13 {
		t.Errorf("BufferMinutes = %d, want 13", res.Options.BufferMinutes)
	}
	if src.pref.DeepWorkCapacity != 2 {
		t.Error("stored preference was mutated")
	}
}

func TestLoadInputs_Errors(t *testing.T) {
	src := newSource()
	req := request(false)
	req.Date = "02/01/2025"
	_, err := LoadInputs(src, req)
	if cat, _ := validation.CategoryOf(err); cat != validation.CategoryInvalidDate {
		t.Errorf("error = %v, want invalid_date", err)
	}

	src.err = errors.New("boom")
	if _, err := LoadInputs(src, request(false)); err == nil || !errors.Is(err, src.err) {
		t.Errorf("error = %v, want wrapped store error", err)
	}
}
