// Package play draws a running level: the maze, the items, the player and
// the header with score, time and the sneeze meter.
package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/sneeze/internal/dweller"
	"github.com/vinser/sneeze/internal/floor"
	"github.com/vinser/sneeze/internal/game"
	"github.com/vinser/sneeze/internal/keys"
	"github.com/vinser/sneeze/internal/model/levels"
	"github.com/vinser/sneeze/internal/model/motd"
	"github.com/vinser/sneeze/internal/render"
	"github.com/vinser/sneeze/internal/style"
)

const (
	hurryFlashTicks = 9 // ticks per half period of the time warning
	headerRows      = 3
	footerRows      = 2
)

// Viewport represents the visible area of the maze
type Viewport struct {
	StartX, StartY int // Top-left corner of viewport in maze coordinates
	Width, Height  int // Dimensions of viewport
}

type Model struct {
	sprites    sprites
	keys       keys.KeyMap
	help       help.Model
	meter      progress.Model
	motd       motd.Model
	muted      bool
	termWidth  int
	termHeight int
	viewport   Viewport
	sb         *strings.Builder
}

// New returns a play model drawing sprites of the given size.
func New(spriteSize string, km keys.KeyMap, tips motd.Model) Model {
	return Model{
		sprites: newSprites(spriteSize),
		keys:    km,
		help:    help.New(),
		meter: progress.New(
			progress.WithGradient(style.Hex("cyan"), style.Hex("red")),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		motd: tips,
		sb:   &strings.Builder{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.motd.Init()
}

// Update keeps the tips scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.motd, cmd = m.motd.Update(msg)
	return m, cmd
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	m.help.Width = width
	m.motd.SetWidth(width)
}

// SetMuted switches the mute mark in the header.
func (m *Model) SetMuted(muted bool) {
	m.muted = muted
}

// View returns the complete screen of the running level.
func (m *Model) View(s *game.Session) string {
	m.sb.Reset()

	f := s.Floor()
	m.fitViewport(f.Grid.Cols(), f.Grid.Rows(), s.Player().Cell())
	mazeWidth := m.viewport.Width * m.sprites.width

	m.renderHeader(s, mazeWidth)
	m.renderMaze(s)
	m.motd.SetWidth(mazeWidth)
	m.sb.WriteString(m.motd.View())
	m.sb.WriteString("\n")
	m.sb.WriteString(m.help.View(m.keys))

	return render.Center(m.sb.String(), m.termWidth, m.termHeight)
}

func (m *Model) renderHeader(s *game.Session, width int) {
	m.sb.WriteString(style.TopPattern.Render(strings.Repeat("/", max(width, 1))))
	m.sb.WriteString("\n")

	line := fmt.Sprintf("Level %d (%s)  Score: %d", s.Level(), levels.Label(s.Level()), s.Score())
	if best := s.HighScore(); best > 0 {
		line += fmt.Sprintf("  Best: %d", best)
	}
	if m.muted {
		line += "  [muted]"
	}
	m.sb.WriteString(style.PlayHeader.Render(line))
	m.sb.WriteString("\n")

	clock := fmt.Sprintf(" Time: %2ds ", s.TimeLeft())
	switch {
	case !s.Hurry():
		clock = style.Title.Render(clock)
	case render.Flash(s.Clock(), hurryFlashTicks):
		clock = style.HurryOn.Render(clock)
	default:
		clock = style.HurryOff.Render(clock)
	}
	nose := "Nose "
	if s.Sneezing() {
		nose = style.Sneezing.Render("ACHOO")
	}
	m.sb.WriteString(clock + "  " + nose + " " + m.meter.ViewAs(s.MeterFraction()))
	m.sb.WriteString("\n")
}

// renderMaze draws the part of the maze inside the viewport.
func (m *Model) renderMaze(s *game.Session) {
	f := s.Floor()
	player := s.Player().Cell()
	playerTile := tilePlayer
	if s.Sneezing() {
		playerTile = tileSneeze
	}

	lines := make([]strings.Builder, m.sprites.rows)
	for y := m.viewport.StartY; y < m.viewport.StartY+m.viewport.Height; y++ {
		for x := m.viewport.StartX; x < m.viewport.StartX+m.viewport.Width; x++ {
			t := tileAt(f, x, y)
			if player.X == x && player.Y == y {
				t = playerTile
			}
			for row := range lines {
				lines[row].WriteString(m.sprites.tiles[t][row])
			}
		}
		for row := range lines {
			m.sb.WriteString(lines[row].String())
			m.sb.WriteString("\n")
			lines[row].Reset()
		}
	}
}

func tileAt(f *floor.Floor, x, y int) tile {
	if !f.Grid.IsOpen(x, y) {
		return tileWall
	}
	item, ok := f.ItemAt(x, y)
	if !ok {
		return tileEmpty
	}
	switch item {
	case floor.Tissue:
		return tileTissue
	case floor.Allergen:
		return tileAllergen
	}
	return tileDot
}

// fitViewport shows the whole maze when it fits the terminal, otherwise a
// window around the player clamped to the maze borders.
func (m *Model) fitViewport(cols, rows int, player dweller.Position) {
	m.viewport.Width, m.viewport.Height = cols, rows
	if m.termWidth > 0 {
		m.viewport.Width = min(cols, max(m.termWidth/m.sprites.width, 1))
	}
	if m.termHeight > 0 {
		avail := m.termHeight - headerRows - footerRows
		m.viewport.Height = min(rows, max(avail/m.sprites.rows, 1))
	}
	m.viewport.StartX = clamp(player.X-m.viewport.Width/2, 0, cols-m.viewport.Width)
	m.viewport.StartY = clamp(player.Y-m.viewport.Height/2, 0, rows-m.viewport.Height)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
