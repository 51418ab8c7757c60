package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-8, 50)
		return m, nil

	case tickMsg:
		// The rollover check runs inside every Record read, so a tick is
		// enough to keep the view honest across midnight.
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.AddWater):
			m.tracker.AddWater()
		case key.Matches(msg, m.keys.SubWater):
			m.tracker.SubtractWater()
		case key.Matches(msg, m.keys.Toggle):
			m.tracker.ToggleProbiotic()
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.tracker.Flush()
			return m, tea.Quit
		}
		return m, nil

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		return m, cmd
	}

	return m, nil
}
