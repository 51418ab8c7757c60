// Package tui is the interactive dashboard: today's intake as a progress
// bar, quick actions for water and medications, and the current toast.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"droplet/internal/toast"
	"droplet/internal/tracker"
)

// tickMsg drives the periodic refresh (toast expiry, day rollover).
type tickMsg time.Time

type Model struct {
	tracker  *tracker.Tracker
	toasts   *toast.Slot
	progress progress.Model
	keys     KeyMap
	help     help.Model
	width    int
	quitting bool
}

func NewModel(t *tracker.Tracker, toasts *toast.Slot) Model {
	return Model{
		tracker:  t,
		toasts:   toasts,
		progress: progress.New(progress.WithDefaultGradient()),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the bubbletea program.
func Run(t *tracker.Tracker, toasts *toast.Slot) error {
	p := tea.NewProgram(NewModel(t, toasts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
