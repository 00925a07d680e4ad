package validation

import (
	"fmt"
	"sort"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateTaskTitle         ConflictType = "duplicate_task_title"
	ConflictInvalidTaskValue           ConflictType = "invalid_task_value"
	ConflictInvalidConstraint          ConflictType = "invalid_constraint"
	ConflictOverlappingFixedConstraint ConflictType = "overlapping_fixed_constraints"
	ConflictOverlappingBlocks          ConflictType = "overlapping_blocks"
	ConflictBlockOutOfDay              ConflictType = "block_out_of_day"
	ConflictDeepCapacityExceeded       ConflictType = "deep_capacity_exceeded"
)

// Conflict represents a detected problem in tasks, constraints or an agenda
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Task titles, constraint labels or block labels involved
	IDs         []string // IDs of the entities involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Merge appends the conflicts of other
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates tasks, constraints and agendas
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateTasks checks tasks for duplicate titles and out-of-range values
func (v *Validator) ValidateTasks(tasks []models.Task) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	titleIDs := make(map[string][]string)
	var titles []string
	for _, task := range tasks {
		if task.Title == "" {
			continue
		}
		if _, seen := titleIDs[task.Title]; !seen {
			titles = append(titles, task.Title)
		}
		titleIDs[task.Title] = append(titleIDs[task.Title], task.ID)
	}
	for _, title := range titles {
		ids := titleIDs[title]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTaskTitle,
				Description: fmt.Sprintf("Duplicate task title: \"%s\" (IDs: %v)", title, ids),
				Items:       []string{title},
				IDs:         ids,
			})
		}
	}

	for _, task := range tasks {
		if err := CheckTask(task); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTaskValue,
				Description: fmt.Sprintf("Task \"%s\": %s", task.Title, err.(*Error).Message),
				Items:       []string{task.Title},
				IDs:         []string{task.ID},
			})
		}
	}

	return result
}

// ValidateConstraints checks constraints for inverted spans and overlapping
// fixed commitments. Overlapping fixed constraints are legal input (the
// resolver merges them) but usually indicate a double booking.
func (v *Validator) ValidateConstraints(cs []models.Constraint) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	var fixed []models.Constraint
	for _, c := range cs {
		if err := CheckConstraint(c); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidConstraint,
				Description: fmt.Sprintf("Constraint %s: %s", describeConstraint(c), err.(*Error).Message),
				Items:       []string{c.Label},
				IDs:         []string{c.ID},
			})
			continue
		}
		if c.Kind == constants.ConstraintFixed {
			fixed = append(fixed, c)
		}
	}

	sort.SliceStable(fixed, func(i, j int) bool {
		return fixed[i].Start.Before(fixed[j].Start)
	})

	// O(n²) - acceptable for the handful of fixed commitments in a week
	for i := 0; i < len(fixed); i++ {
		for j := i + 1; j < len(fixed); j++ {
			c1, c2 := fixed[i], fixed[j]
			if !c2.Start.Before(c1.End) {
				break
			}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOverlappingFixedConstraint,
				Description: fmt.Sprintf("Fixed constraints overlap: %s and %s", describeConstraint(c1), describeConstraint(c2)),
				Items:       []string{c1.Label, c2.Label},
				IDs:         []string{c1.ID, c2.ID},
			})
		}
	}

	return result
}

// ValidateAgenda checks a generated block list against the scheduling invariants
func (v *Validator) ValidateAgenda(blocks []models.ScheduledBlock, prefs models.Preference) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	deep := 0
	var placed []models.ScheduledBlock
	for _, b := range blocks {
		if b.StartMin < 0 || b.EndMin > constants.MinutesPerDay || b.EndMin <= b.StartMin {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBlockOutOfDay,
				Description: fmt.Sprintf("Block \"%s\" (%d-%d) is outside the day", b.Label, b.StartMin, b.EndMin),
				Items:       []string{b.Label},
			})
			continue
		}
		if b.Type == constants.BlockDeep {
			deep++
		}
		if b.Type != constants.BlockBreak {
			placed = append(placed, b)
		}
	}

	if deep > prefs.DeepWorkCapacity {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDeepCapacityExceeded,
			Description: fmt.Sprintf("%d deep blocks exceed capacity of %d", deep, prefs.DeepWorkCapacity),
		})
	}

	sort.SliceStable(placed, func(i, j int) bool {
		return placed[i].StartMin < placed[j].StartMin
	})
	for i := 1; i < len(placed); i++ {
		prev, cur := placed[i-1], placed[i]
		if cur.StartMin < prev.EndMin {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOverlappingBlocks,
				Description: fmt.Sprintf("Blocks overlap: \"%s\" and \"%s\"", prev.Label, cur.Label),
				Items:       []string{prev.Label, cur.Label},
			})
		}
	}

	return result
}

// CheckTask returns a validation error for a task whose values are out of range
func CheckTask(task models.Task) error {
	if task.EstimateMinutes <= 0 {
		return Errorf(CategoryInvalidValue, "estimate_minutes", "estimate must be positive, got %d", task.EstimateMinutes)
	}
	if task.Importance < 0 || task.Importance > 10 {
		return Errorf(CategoryInvalidValue, "importance", "importance must be between 0 and 10, got %d", task.Importance)
	}
	if task.Flexibility < 0 || task.Flexibility > 10 {
		return Errorf(CategoryInvalidValue, "flexibility", "flexibility must be between 0 and 10, got %d", task.Flexibility)
	}
	if task.Area != "" && !constants.IsValidArea(task.Area) {
		return Errorf(CategoryInvalidValue, "area", "unknown area %q", task.Area)
	}
	switch task.EnergyType {
	case constants.EnergyDeep, constants.EnergyShallow:
	default:
		return Errorf(CategoryInvalidValue, "energy_type", "unknown energy type %q", task.EnergyType)
	}
	return nil
}

// CheckConstraint fails when a constraint's span cannot be interpreted
func CheckConstraint(c models.Constraint) error {
	if c.Start.IsZero() || c.End.IsZero() {
		return Errorf(CategoryInvalidDate, "constraint", "%s is missing a start or end time", describeConstraint(c))
	}
	if c.End.Before(c.Start) {
		return Errorf(CategoryInvalidRange, "constraint", "%s ends (%s) before it starts (%s)",
			describeConstraint(c), c.End.Format(constants.LocalDateTimeMinuteFormat), c.Start.Format(constants.LocalDateTimeMinuteFormat))
	}
	return nil
}

// CheckConstraints returns the first constraint error, if any
func CheckConstraints(cs []models.Constraint) error {
	for _, c := range cs {
		if err := CheckConstraint(c); err != nil {
			return err
		}
	}
	return nil
}

func describeConstraint(c models.Constraint) string {
	if c.Label != "" {
		return fmt.Sprintf("%q (%s)", c.Label, c.Kind)
	}
	if c.ID != "" {
		return fmt.Sprintf("%s (%s)", c.ID, c.Kind)
	}
	return string(c.Kind)
}
