// Package done is the final screen after the last level or a voluntary stop.
package done

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/sneeze/internal/render"
	"github.com/vinser/sneeze/internal/style"
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	level int
	score int
	best  int
}

func New(level, score, best, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{width: width, height: height, level: level, score: score, best: best}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

const footer = "q — quit"

func (m Model) View() string {
	return render.Page("Bless you!", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("You made it through level %d.", m.level),
		fmt.Sprintf("Last level score: %d", m.score),
		style.HighScore.Render(fmt.Sprintf("Best level score: %d", m.best)),
	)
}
