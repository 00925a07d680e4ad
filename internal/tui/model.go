package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/planner"
	"github.com/julianstephens/cadence/internal/scheduler"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/tui/components/agenda"
	"github.com/julianstephens/cadence/internal/tui/components/tasklist"
	"github.com/julianstephens/cadence/internal/validation"
)

type SessionState int

const (
	StateAgenda SessionState = iota
	StateTasks
	StateInsights
)

const tabCount = 3

// Source is the storage surface the viewer reads and writes
type Source interface {
	planner.Source
	GetLatestAgenda(owner, date string) (models.Agenda, error)
	SaveAgenda(models.Agenda) (models.Agenda, error)
}

type Config struct {
	Owner    string
	Date     string // YYYY-MM-DD
	Today    string // YYYY-MM-DD, target of the today key
	Options  scheduler.Options
	Adaptive bool
}

type Model struct {
	src         Source
	scheduler   *scheduler.Scheduler
	cfg         Config
	date        string
	state       SessionState
	keys        KeyMap
	help        help.Model
	agendaModel agenda.Model
	taskList    tasklist.Model
	inputs      planner.Inputs
	pending     *models.Agenda // generated but not saved
	status      string
	err         error
	quitting    bool
	width       int
	height      int
}

func NewModel(src Source, sched *scheduler.Scheduler, cfg Config) Model {
	if cfg.Today == "" {
		cfg.Today = cfg.Date
	}
	m := Model{
		src:         src,
		scheduler:   sched,
		cfg:         cfg,
		date:        cfg.Date,
		state:       StateAgenda,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		agendaModel: agenda.New(0, 0),
		taskList:    tasklist.New(nil, 0, 0),
	}
	m.loadDate()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateAgenda {
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay, m.keys.Generate, m.keys.Save)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay, m.keys.Today}

	var actions []key.Binding
	if m.state == StateAgenda {
		actions = []key.Binding{m.keys.Generate, m.keys.Save}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Date() string {
	return m.date
}

func (m Model) State() SessionState {
	return m.state
}

func (m Model) Status() string {
	return m.status
}

func (m Model) Err() error {
	return m.err
}

func (m Model) request() planner.Request {
	return planner.Request{
		Owner:    m.cfg.Owner,
		Date:     m.date,
		Options:  m.cfg.Options,
		Adaptive: m.cfg.Adaptive,
	}
}

// loadDate reads the inputs and the latest saved agenda for the current date
func (m *Model) loadDate() {
	m.pending = nil
	m.status = ""
	m.err = nil

	in, err := planner.LoadInputs(m.src, m.request())
	if err != nil {
		m.err = err
		m.inputs = planner.Inputs{}
	} else {
		m.inputs = in
	}
	m.taskList.SetTasks(m.inputs.Tasks)

	saved, err := m.src.GetLatestAgenda(m.cfg.Owner, m.date)
	switch {
	case err == nil:
		m.agendaModel.SetAgenda(m.date, &saved, true)
	case errors.Is(err, storage.ErrNotFound):
		m.agendaModel.SetAgenda(m.date, nil, false)
	default:
		m.agendaModel.SetAgenda(m.date, nil, false)
		if m.err == nil {
			m.err = fmt.Errorf("failed to load agenda: %w", err)
		}
	}
}

func (m *Model) generate() {
	res, err := planner.Plan(m.scheduler, m.inputs, m.request())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.pending = &res.Agenda
	m.agendaModel.SetAgenda(m.date, m.pending, false)

	m.status = fmt.Sprintf("Generated %d blocks", len(res.Agenda.Blocks))
	if res.Throttle != nil && res.Throttle.Factor < 1 {
		m.status += fmt.Sprintf(" (throttled: %s)", res.Throttle.Reason)
	}
	if report := validation.New().ValidateAgenda(res.Agenda.Blocks, res.Preference); report.HasConflicts() {
		m.status += fmt.Sprintf(" · %d warning(s)", len(report.Conflicts))
	}
}

func (m *Model) save() {
	if m.pending == nil {
		m.status = "Nothing to save. Press 'g' to generate."
		return
	}
	saved, err := m.src.SaveAgenda(*m.pending)
	if err != nil {
		m.err = fmt.Errorf("failed to save agenda: %w", err)
		return
	}
	m.err = nil
	m.pending = nil
	m.agendaModel.SetAgenda(m.date, &saved, true)
	m.status = fmt.Sprintf("Saved revision %d", saved.Revision)
}
