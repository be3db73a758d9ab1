// Package over is the screen shown when the time runs out.
package over

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
	dots  int // dots left behind
}

func New(level, score, dots, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:  width,
		height: height,
		level:  level,
		score:  score,
		dots:   dots,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

const footer = "any key or click — try again, q — quit"

func (m Model) View() string {
	return render.Page("Time is up!", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	var content []string
	content = append(content, fmt.Sprintf("Level %d score: %d", m.level, m.score))
	content = append(content, "")
	if m.dots == 1 {
		content = append(content, style.HighScore.Render("Just one dot short!"))
	} else {
		content = append(content, fmt.Sprintf("%d dots were left in the maze.", m.dots))
	}
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}
