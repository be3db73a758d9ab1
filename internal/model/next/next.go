// Package next is the screen between two levels.
package next

import (
	"fmt"
	"time"

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
	return Model{
		width:  width,
		height: height,
		level:  level,
		score:  score,
		best:   best,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

const footer = "any key — next level, 1 — stop here, q — quit"

func (m Model) View() string {
	flash := ""
	if (time.Now().UnixNano()/int64(time.Millisecond)/500)%2 == 0 {
		flash = fmt.Sprintf("Level %d cleared!", m.level)
	}
	return render.Page(flash, m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	lines := []string{
		fmt.Sprintf("Score: %d", m.score),
		fmt.Sprintf("Bonus included: %d", 100*m.level),
	}
	if m.score >= m.best {
		lines = append(lines, style.HighScore.Render("Best level so far!"))
	} else {
		lines = append(lines, fmt.Sprintf("Best: %d", m.best))
	}
	lines = append(lines, "", fmt.Sprintf("Get ready for level %d...", m.level+1))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
