// Package snapshot reads and writes owner snapshot files: the preferences,
// tasks, constraints and mood logs of one owner in a single JSON or YAML
// document.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	yaml "go.yaml.in/yaml/v3"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
	"github.com/julianstephens/cadence/internal/validation"
)

// File is the on-disk layout. Constraint instants are ISO-8601 strings; local
// wall times are read in Timezone.
type File struct {
	Owner       string            `json:"owner,omitempty" yaml:"owner,omitempty"`
	Timezone    string            `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Preferences *PreferenceEntry  `json:"preferences,omitempty" yaml:"preferences,omitempty"`
	Tasks       []TaskEntry       `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Constraints []ConstraintEntry `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Moods       []MoodEntry       `json:"moods,omitempty" yaml:"moods,omitempty"`
}

type PreferenceEntry struct {
	AreaWeights                 map[string]int `json:"area_weights,omitempty" yaml:"area_weights,omitempty"`
	DeepWorkCapacity            *int           `json:"deep_work_capacity,omitempty" yaml:"deep_work_capacity,omitempty"`
	BreakPreference             *int           `json:"break_preference,omitempty" yaml:"break_preference,omitempty"`
	SleepTargetHours            *float64       `json:"sleep_target_hours,omitempty" yaml:"sleep_target_hours,omitempty"`
	WeeklyModerateMinutesTarget *int           `json:"weekly_moderate_minutes_target,omitempty" yaml:"weekly_moderate_minutes_target,omitempty"`
	WeeklyStrengthDaysTarget    *int           `json:"weekly_strength_days_target,omitempty" yaml:"weekly_strength_days_target,omitempty"`
}

type TaskEntry struct {
	ID              string `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string `json:"title" yaml:"title"`
	Area            string `json:"area,omitempty" yaml:"area,omitempty"`
	EstimateMinutes int    `json:"estimate_minutes" yaml:"estimate_minutes"`
	Importance      int    `json:"importance" yaml:"importance"`
	EnergyType      string `json:"energy_type" yaml:"energy_type"`
	Flexibility     int    `json:"flexibility,omitempty" yaml:"flexibility,omitempty"`
	Deadline        string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
}

type ConstraintEntry struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Kind  string `json:"kind" yaml:"kind"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

type MoodEntry struct {
	Date   string `json:"date" yaml:"date"`
	Mood   int    `json:"mood" yaml:"mood"`
	Energy int    `json:"energy" yaml:"energy"`
}

// Snapshot is a decoded file as model values
type Snapshot struct {
	Owner       string
	Timezone    string
	Location    *time.Location
	Preference  models.Preference
	Tasks       []models.Task
	Constraints []models.Constraint
	Moods       []models.MoodLog
}

// Load reads path (YAML when the extension is .yaml or .yml, JSON otherwise)
// and converts it to model values. Unknown fields are rejected. Entries
// without an ID get a fresh one.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Decode(path, data)
}

// Decode parses data as if it were read from path
func Decode(path string, data []byte) (*Snapshot, error) {
	j, err := coerceToJSONBytes(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(j))
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return f.toSnapshot()
}

func (f File) toSnapshot() (*Snapshot, error) {
	owner := f.Owner
	if owner == "" {
		owner = constants.DefaultOwner
	}
	timezone := f.Timezone
	if timezone == "" {
		timezone = constants.DefaultTimezone
	}
	loc, err := utils.LoadLocation(timezone)
	if err != nil {
		return nil, validation.Errorf(validation.CategoryInvalidValue, "timezone", "unknown timezone %q", timezone)
	}

	snap := &Snapshot{
		Owner:      owner,
		Timezone:   timezone,
		Location:   loc,
		Preference: f.Preferences.toModel(owner),
	}

	for i, e := range f.Tasks {
		t := models.Task{
			ID:              idOrNew(e.ID),
			Owner:           owner,
			Title:           e.Title,
			Area:            constants.Area(e.Area),
			EstimateMinutes: e.EstimateMinutes,
			Importance:      e.Importance,
			EnergyType:      constants.EnergyType(e.EnergyType),
			Flexibility:     e.Flexibility,
			Deadline:        e.Deadline,
		}
		if err := validation.CheckTask(t); err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		snap.Tasks = append(snap.Tasks, t)
	}

	for i, e := range f.Constraints {
		start, err := utils.ParseTimestamp(e.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("constraints[%d]: %w", i, validation.Errorf(validation.CategoryInvalidDate, "start", "cannot parse %q", e.Start))
		}
		end, err := utils.ParseTimestamp(e.End, loc)
		if err != nil {
			return nil, fmt.Errorf("constraints[%d]: %w", i, validation.Errorf(validation.CategoryInvalidDate, "end", "cannot parse %q", e.End))
		}
		c := models.Constraint{
			ID:    idOrNew(e.ID),
			Owner: owner,
			Kind:  constants.ConstraintKind(e.Kind),
			Start: start,
			End:   end,
			Label: e.Label,
		}
		if err := validation.CheckConstraint(c); err != nil {
			return nil, fmt.Errorf("constraints[%d]: %w", i, err)
		}
		snap.Constraints = append(snap.Constraints, c)
	}

	for i, e := range f.Moods {
		if _, err := utils.ParseDateInLocation(e.Date, loc); err != nil {
			return nil, fmt.Errorf("moods[%d]: %w", i, validation.Errorf(validation.CategoryInvalidDate, "date", "cannot parse %q as YYYY-MM-DD", e.Date))
		}
		snap.Moods = append(snap.Moods, models.MoodLog{
			ID:     uuid.NewString(),
			Owner:  owner,
			Date:   e.Date,
			Mood:   e.Mood,
			Energy: e.Energy,
		})
	}

	return snap, nil
}

func (p *PreferenceEntry) toModel(owner string) models.Preference {
	pref := models.DefaultPreference(owner)
	if p == nil {
		return pref
	}
	for area, w := range p.AreaWeights {
		pref.AreaWeights[constants.Area(area)] = w
	}
	if p.DeepWorkCapacity != nil {
		pref.DeepWorkCapacity = *p.DeepWorkCapacity
	}
	if p.BreakPreference != nil {
		pref.BreakPreference = *p.BreakPreference
	}
	if p.SleepTargetHours != nil {
		pref.SleepTargetHours = *p.SleepTargetHours
	}
	pref.WeeklyModerateMinutesTarget = p.WeeklyModerateMinutesTarget
	pref.WeeklyStrengthDaysTarget = p.WeeklyStrengthDaysTarget
	return pref
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// FromSnapshot converts model values back to the file layout. Constraint
// instants are written as RFC3339 in the snapshot location.
func FromSnapshot(s *Snapshot) File {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}

	deep := s.Preference.DeepWorkCapacity
	brk := s.Preference.BreakPreference
	sleep := s.Preference.SleepTargetHours
	f := File{
		Owner:    s.Owner,
		Timezone: s.Timezone,
		Preferences: &PreferenceEntry{
			DeepWorkCapacity:            &deep,
			BreakPreference:             &brk,
			SleepTargetHours:            &sleep,
			WeeklyModerateMinutesTarget: s.Preference.WeeklyModerateMinutesTarget,
			WeeklyStrengthDaysTarget:    s.Preference.WeeklyStrengthDaysTarget,
		},
	}
	if len(s.Preference.AreaWeights) > 0 {
		f.Preferences.AreaWeights = make(map[string]int, len(s.Preference.AreaWeights))
		for area, w := range s.Preference.AreaWeights {
			f.Preferences.AreaWeights[string(area)] = w
		}
	}

	for _, t := range s.Tasks {
		f.Tasks = append(f.Tasks, TaskEntry{
			ID:              t.ID,
			Title:           t.Title,
			Area:            string(t.Area),
			EstimateMinutes: t.EstimateMinutes,
			Importance:      t.Importance,
			EnergyType:      string(t.EnergyType),
			Flexibility:     t.Flexibility,
			Deadline:        t.Deadline,
		})
	}
	for _, c := range s.Constraints {
		f.Constraints = append(f.Constraints, ConstraintEntry{
			ID:    c.ID,
			Kind:  string(c.Kind),
			Start: c.Start.In(loc).Format(time.RFC3339),
			End:   c.End.In(loc).Format(time.RFC3339),
			Label: c.Label,
		})
	}
	for _, m := range s.Moods {
		f.Moods = append(f.Moods, MoodEntry{Date: m.Date, Mood: m.Mood, Energy: m.Energy})
	}
	return f
}

// Save writes s to path as YAML or JSON, chosen by extension
func Save(path string, s *Snapshot) error {
	data, err := Encode(path, s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func Encode(path string, s *Snapshot) ([]byte, error) {
	f := FromSnapshot(s)
	if isYAML(path) {
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return data, nil
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}
