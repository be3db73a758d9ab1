// Package quit shows a goodbye before the program exits.
package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/sneeze/internal/render"
)

const quitPeriod = 1500 * time.Millisecond

type Model struct {
	quitUntil  time.Time
	score      int
	termWidth  int
	termHeight int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(best int) Model {
	return Model{
		quitUntil: time.Now().Add(quitPeriod),
		score:     best,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	text := "\nAchoo! Bye!\n"
	if m.score > 0 {
		text = fmt.Sprintf("\nAchoo! Bye!\nYour best level score was %d.\n", m.score)
	}
	return render.Center(text, m.termWidth, m.termHeight)
}
