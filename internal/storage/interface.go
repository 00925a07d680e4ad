package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/cadence/internal/models"
)

// ErrNotFound is returned when a requested record does not exist or was deleted
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings(owner string) (models.Settings, error)
	SaveSettings(owner string, settings models.Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks(owner string) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	RestoreTask(id string) error

	// Constraints
	AddConstraint(models.Constraint) error
	GetConstraint(id string) (models.Constraint, error)
	GetConstraints(owner string) ([]models.Constraint, error)
	// GetConstraintsInRange returns the constraints that overlap [from, to)
	GetConstraintsInRange(owner string, from, to time.Time) ([]models.Constraint, error)
	DeleteConstraint(id string) error

	// Preferences. GetPreference falls back to the defaults when none are stored.
	GetPreference(owner string) (models.Preference, error)
	SavePreference(models.Preference) error

	// Mood logs, one per owner and date
	AddMoodLog(models.MoodLog) error
	// GetRecentMoodLogs returns up to limit logs, newest date first
	GetRecentMoodLogs(owner string, limit int) ([]models.MoodLog, error)

	// Agendas. SaveAgenda assigns the next revision for the date.
	SaveAgenda(models.Agenda) (models.Agenda, error)
	GetLatestAgenda(owner, date string) (models.Agenda, error)
	GetAgendaRevision(owner, date string, revision int) (models.Agenda, error)
	GetAllAgendas(owner string) ([]models.Agenda, error)

	// Utils
	GetConfigPath() string
}
