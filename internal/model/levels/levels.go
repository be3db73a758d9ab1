// Package levels is the level select screen.
package levels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/sneeze/internal/config"
	"github.com/vinser/sneeze/internal/keys"
	"github.com/vinser/sneeze/internal/render"
	"github.com/vinser/sneeze/internal/style"
)

const (
	width  = 50
	height = 14
)

// Label names a level the way the menu shows it.
func Label(level int) string {
	switch level {
	case 1:
		return "Easy"
	case 2:
		return "Medium"
	case 3:
		return "Hard"
	}
	return fmt.Sprintf("Level %d", level)
}

type Model struct {
	keys       keys.KeyMap
	selected   int // 0 based menu row
	termWidth  int
	termHeight int
}

func New(km keys.KeyMap) Model {
	return Model{keys: km}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

// Update moves the cursor and returns the level picked with enter, space or
// a digit key, 0 while nothing is picked.
func (m Model) Update(msg tea.Msg) (Model, int) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, 0
	}
	switch {
	case key.Matches(km, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(km, m.keys.Down):
		if m.selected < config.MaxLevel-config.MinLevel {
			m.selected++
		}
	case km.Type == tea.KeyEnter || km.Type == tea.KeySpace:
		return m, m.selected + config.MinLevel
	default:
		if d := keys.Digit(km); d >= config.MinLevel && d <= config.MaxLevel {
			m.selected = d - config.MinLevel
			return m, d
		}
	}
	return m, 0
}

// Selected returns the level under the cursor.
func (m Model) Selected() int {
	return m.selected + config.MinLevel
}

const footer = "↑ ↓ — select, enter — play, 1 2 3 — pick, q — quit"

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(centerText(style.LevelTitle.Render("Choose your nose")) + "\n\n")

	for level := config.MinLevel; level <= config.MaxLevel; level++ {
		prefix := "  "
		if level == m.Selected() {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%d. %s", prefix, level, Label(level))
		if level == m.Selected() {
			b.WriteString(centerText(style.LevelItemSelected.Render(line)))
		} else {
			b.WriteString(centerText(style.LevelItem.Render(line)))
		}
		b.WriteString("\n")
	}
	return render.Page("Sneeze Attack!", b.String(), footer, width, height, m.termWidth, m.termHeight)
}

func centerText(text string) string {
	padding := (width - lipgloss.Width(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}
