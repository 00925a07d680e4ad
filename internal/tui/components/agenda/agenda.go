package agenda

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/interval"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/scheduler"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(9)

	deepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	shallowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	workoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

func labelStyle(t constants.BlockType) lipgloss.Style {
	switch t {
	case constants.BlockDeep:
		return deepStyle
	case constants.BlockBreak, constants.BlockBuffer:
		return breakStyle
	case constants.BlockWorkout:
		return workoutStyle
	default:
		return shallowStyle
	}
}

// RenderBlocks renders blocks one per line in start order
func RenderBlocks(blocks []models.ScheduledBlock) string {
	var b strings.Builder
	for _, block := range scheduler.SortBlocks(blocks) {
		span := fmt.Sprintf("%s–%s", interval.FormatClock(block.StartMin), interval.FormatClock(block.EndMin))
		fmt.Fprintf(&b, "%s %s %s\n",
			timeStyle.Render(span),
			kindStyle.Render(string(block.Type)),
			labelStyle(block.Type).Render(block.Label),
		)
	}
	return b.String()
}

// Header summarizes an agenda on one line
func Header(a models.Agenda, saved bool) string {
	state := "unsaved"
	if saved {
		state = fmt.Sprintf("revision %d", a.Revision)
	}
	return headerStyle.Render(fmt.Sprintf("%s  ·  confidence %.2f  ·  %s", a.Date, a.Confidence, state))
}

type Model struct {
	viewport viewport.Model
	Agenda   *models.Agenda
	Saved    bool
	Date     string
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Agenda == nil {
		return fmt.Sprintf("No agenda saved for %s. Press 'g' to generate.", m.Date)
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetAgenda shows a for date; a nil agenda clears the view
func (m *Model) SetAgenda(date string, a *models.Agenda, saved bool) {
	m.Date = date
	m.Agenda = a
	m.Saved = saved
	m.Render()
}

func (m *Model) Render() {
	if m.Agenda == nil {
		m.viewport.SetContent("")
		return
	}
	content := Header(*m.Agenda, m.Saved) + "\n\n"
	if len(m.Agenda.Blocks) == 0 {
		content += "Nothing scheduled."
	} else {
		content += RenderBlocks(m.Agenda.Blocks)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}
