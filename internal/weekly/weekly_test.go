package weekly

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

const testWeek = "2025-01-06" // a Monday

// dailyNoGo blocks [00:00, until) on every day of the test week.
func dailyNoGo(until int) []models.Constraint {
	start, _ := time.ParseInLocation(constants.DateFormat, testWeek, time.UTC)
	var cs []models.Constraint
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		cs = append(cs, models.Constraint{
			ID:    fmt.Sprintf("nogo-%d", i),
			Kind:  constants.ConstraintNoGo,
			Start: day,
			End:   day.Add(time.Duration(until) * time.Minute),
		})
	}
	return cs
}

func TestSuggestWeeklyCapacity(t *testing.T) {
	tests := []struct {
		name    string
		cs      []models.Constraint
		buffer  int
		wantDay int
	}{
		{"empty week default buffer", nil, 10, 1296},
		{"no buffer", nil, 0, 1440},
		{"negative buffer clamps to zero", nil, -5, 1440},
		{"buffer clamps to fifty", nil, 80, 720},
		{"busy mornings", dailyNoGo(22 * 60), 10, 108},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := SuggestWeeklyCapacity(tt.cs, CapacityOptions{
				WeekStart:     testWeek,
				BufferPercent: tt.buffer,
				Location:      time.UTC,
			})
			if err != nil {
				t.Fatalf("SuggestWeeklyCapacity failed: %v", err)
			}
			if c.WeekStart != testWeek {
				t.Errorf("WeekStart = %s, want %s", c.WeekStart, testWeek)
			}
			if len(c.DailyFreeMinutes) != 7 {
				t.Fatalf("DailyFreeMinutes has %d days, want 7", len(c.DailyFreeMinutes))
			}
			for i, m := range c.DailyFreeMinutes {
				if m != tt.wantDay {
					t.Errorf("day %d = %d, want %d", i, m, tt.wantDay)
				}
			}
			if c.TotalFreeMinutes != 7*tt.wantDay {
				t.Errorf("TotalFreeMinutes = %d, want %d", c.TotalFreeMinutes, 7*tt.wantDay)
			}
		})
	}
}

func TestSuggestWeeklyCapacity_SleepAcrossMidnight(t *testing.T) {
	// Sleep 23:00 Sunday to 07:00 Monday only touches the first day
	cs := []models.Constraint{{
		Kind:  constants.ConstraintSleep,
		Start: time.Date(2025, 1, 5, 23, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 6, 7, 0, 0, 0, time.UTC),
	}}
	c, err := SuggestWeeklyCapacity(cs, CapacityOptions{WeekStart: testWeek, Location: time.UTC})
	if err != nil {
		t.Fatalf("SuggestWeeklyCapacity failed: %v", err)
	}
	want := []int{1020, 1440, 1440, 1440, 1440, 1440, 1440}
	if !reflect.DeepEqual(c.DailyFreeMinutes, want) {
		t.Errorf("DailyFreeMinutes = %v, want %v", c.DailyFreeMinutes, want)
	}
}

func TestSuggestWeeklyCapacity_DefaultsToNextWeek(t *testing.T) {
	opts := DefaultCapacityOptions()
	opts.Location = time.UTC
	opts.Now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) // Wednesday

	c, err := SuggestWeeklyCapacity(nil, opts)
	if err != nil {
		t.Fatalf("SuggestWeeklyCapacity failed: %v", err)
	}
	if c.WeekStart != "2025-01-06" {
		t.Errorf("WeekStart = %s, want 2025-01-06", c.WeekStart)
	}
	if c.DailyFreeMinutes[0] != 1296 {
		t.Errorf("default buffer not applied: %v", c.DailyFreeMinutes)
	}
}

func TestSuggestWeeklyCapacity_InvalidWeekStart(t *testing.T) {
	if _, err := SuggestWeeklyCapacity(nil, CapacityOptions{WeekStart: "next monday"}); err == nil {
		t.Error("Expected error for unparsable week start")
	}
}

func workTask(id string, minutes, importance int) models.Task {
	return models.Task{
		ID:              id,
		Title:           id,
		Area:            constants.AreaWork,
		EstimateMinutes: minutes,
		Importance:      importance,
		EnergyType:      constants.EnergyShallow,
	}
}

func distributeOpts() DistributeOptions {
	return DistributeOptions{WeekStart: testWeek, BufferPercent: 0, Location: time.UTC}
}

func TestDistribute_BalancesArea(t *testing.T) {
	tasks := []models.Task{workTask("a", 60, 5), workTask("b", 60, 5), workTask("c", 60, 5)}

	dist, err := DistributeTasksAcrossWeek(tasks, dailyNoGo(22*60), models.DefaultPreference("me"), distributeOpts())
	if err != nil {
		t.Fatalf("DistributeTasksAcrossWeek failed: %v", err)
	}

	for i, want := range []string{"a", "b", "c"} {
		got := dist.Days[i].Assigned
		if len(got) != 1 || got[0].TaskID != want {
			t.Errorf("day %d assigned = %v, want [%s]", i, got, want)
		}
		if dist.Days[i].RemainingMinutes != 60 {
			t.Errorf("day %d remaining = %d, want 60", i, dist.Days[i].RemainingMinutes)
		}
	}
	if dist.Days[0].Date != "2025-01-06" || dist.Days[6].Date != "2025-01-12" {
		t.Errorf("dates = %s..%s", dist.Days[0].Date, dist.Days[6].Date)
	}
}

func TestDistribute_OrderByWeightThenLength(t *testing.T) {
	prefs := models.DefaultPreference("me")
	prefs.AreaWeights[constants.AreaHealth] = 9
	run := models.Task{ID: "run", Area: constants.AreaHealth, EstimateMinutes: 30, Importance: 5, EnergyType: constants.EnergyShallow}
	long := workTask("long", 100, 5)
	short := workTask("short", 20, 5)

	// Every day holds 120 minutes, so "run" (weight 45) goes first onto
	// Monday, then "short" before "long" among the equal work tasks.
	dist, err := DistributeTasksAcrossWeek([]models.Task{long, short, run}, dailyNoGo(22*60), prefs, distributeOpts())
	if err != nil {
		t.Fatalf("DistributeTasksAcrossWeek failed: %v", err)
	}

	var order []string
	for _, d := range dist.Days {
		for _, a := range d.Assigned {
			order = append(order, a.TaskID)
		}
	}
	if !reflect.DeepEqual(order, []string{"run", "short", "long"}) {
		t.Errorf("assignment order = %v, want [run short long]", order)
	}
}

func TestDistribute_OverflowAndUnassigned(t *testing.T) {
	tasks := []models.Task{
		workTask("overflow", 125, 9),
		workTask("too-big", 200, 8),
	}

	dist, err := DistributeTasksAcrossWeek(tasks, dailyNoGo(22*60), models.DefaultPreference("me"), distributeOpts())
	if err != nil {
		t.Fatalf("DistributeTasksAcrossWeek failed: %v", err)
	}

	first := dist.Days[0]
	if len(first.Assigned) != 1 || first.Assigned[0].TaskID != "overflow" {
		t.Errorf("day 0 assigned = %v, want [overflow]", first.Assigned)
	}
	if first.RemainingMinutes != 0 {
		t.Errorf("day 0 remaining = %d, want 0", first.RemainingMinutes)
	}
	if len(dist.Unassigned) != 1 || dist.Unassigned[0].TaskID != "too-big" {
		t.Errorf("Unassigned = %v, want [too-big]", dist.Unassigned)
	}
}

func TestDistribute_NeverOverfillsBeyondOverflow(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	prefs := models.DefaultPreference("me")

	for round := 0; round < 50; round++ {
		var tasks []models.Task
		for i := 0; i < 25; i++ {
			tasks = append(tasks, models.Task{
				ID:              fmt.Sprintf("t%d", i),
				Area:            constants.Areas[r.Intn(len(constants.Areas))],
				EstimateMinutes: 5 + r.Intn(150),
				Importance:      r.Intn(11),
				EnergyType:      constants.EnergyShallow,
			})
		}
		cs := dailyNoGo(20*60 + r.Intn(180))

		capacity, err := SuggestWeeklyCapacity(cs, CapacityOptions{WeekStart: testWeek, BufferPercent: 10, Location: time.UTC})
		if err != nil {
			t.Fatalf("SuggestWeeklyCapacity failed: %v", err)
		}
		dist, err := DistributeTasksAcrossWeek(tasks, cs, prefs, DistributeOptions{WeekStart: testWeek, BufferPercent: 10, Location: time.UTC})
		if err != nil {
			t.Fatalf("DistributeTasksAcrossWeek failed: %v", err)
		}

		placed := len(dist.Unassigned)
		for i, d := range dist.Days {
			remaining := capacity.DailyFreeMinutes[i]
			for _, a := range d.Assigned {
				if a.Minutes > remaining+overflowMinutes {
					t.Fatalf("round %d day %d: %d minutes assigned with %d remaining", round, i, a.Minutes, remaining)
				}
				remaining = max(0, remaining-a.Minutes)
				placed++
			}
			if d.RemainingMinutes != remaining {
				t.Errorf("round %d day %d: remaining = %d, want %d", round, i, d.RemainingMinutes, remaining)
			}
		}
		if placed != len(tasks) {
			t.Fatalf("round %d: %d tasks accounted for, want %d", round, placed, len(tasks))
		}
	}
}
