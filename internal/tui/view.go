package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cadence/internal/insights"
	"github.com/julianstephens/cadence/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAgenda:
		content = m.viewAgenda()
	case StateTasks:
		content = m.viewTasks()
	case StateInsights:
		content = m.viewInsights()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Agenda", "Tasks", "Insights"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, dateStyle.Render(m.date))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewAgenda() string {
	return docStyle.Render(m.agendaModel.View())
}

func (m Model) viewTasks() string {
	return docStyle.Render(m.taskList.View())
}

func (m Model) viewInsights() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Mood and energy") + "\n")
	weekly := insights.ComputeWeeklyInsights(m.inputs.Moods, 0)
	if len(weekly) == 0 {
		b.WriteString("No mood logs yet. Record one with 'cadence mood log'.\n")
	}
	writeInsights(&b, weekly)

	b.WriteString("\n" + sectionStyle.Render("Meetings") + "\n")
	meetings, err := insights.ComputeMeetingAwareSuggestions(m.inputs.Constraints, m.date, m.cfg.Options.Location)
	switch {
	case err != nil:
		b.WriteString(errorStyle.Render(err.Error()) + "\n")
	case len(meetings) == 0:
		b.WriteString("No fixed meetings on this day.\n")
	default:
		writeInsights(&b, meetings)
	}

	return docStyle.Render(b.String())
}

func writeInsights(b *strings.Builder, list []models.Insight) {
	for _, in := range list {
		if in.Note != "" {
			fmt.Fprintf(b, "  %s\n", in.Note)
			continue
		}
		fmt.Fprintf(b, "  %-12s %.2f\n", in.Metric, in.Value)
	}
}
