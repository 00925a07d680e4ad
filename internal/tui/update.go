package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/utils"
)

// chromeHeight is the space taken by the tabs, status line and help
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		bodyHeight := msg.Height - chromeHeight - v
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		m.agendaModel.SetSize(msg.Width-h, bodyHeight)
		m.taskList.SetSize(msg.Width-h, bodyHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.PrevDay):
			m.shiftDay(-1)
			return m, nil
		case key.Matches(msg, m.keys.NextDay):
			m.shiftDay(1)
			return m, nil
		case key.Matches(msg, m.keys.Today):
			if m.date != m.cfg.Today {
				m.date = m.cfg.Today
				m.loadDate()
			}
			return m, nil
		}

		if m.state == StateAgenda {
			switch {
			case key.Matches(msg, m.keys.Generate):
				m.generate()
				return m, nil
			case key.Matches(msg, m.keys.Save):
				m.save()
				return m, nil
			}
		}
	}

	switch m.state {
	case StateAgenda:
		m.agendaModel, cmd = m.agendaModel.Update(msg)
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	}
	return m, cmd
}

func (m *Model) shiftDay(n int) {
	day, err := utils.ParseDateInLocation(m.date, m.cfg.Options.Location)
	if err != nil {
		m.err = err
		return
	}
	m.date = utils.AddDays(day, n).Format(constants.DateFormat)
	m.loadDate()
}
