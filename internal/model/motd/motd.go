// Package motd scrolls gameplay tips under the maze.
package motd

import (
	"encoding/json"
	"log"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/sneeze/internal/embeddata"
)

type Model struct {
	msgs       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   []rune
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

type tipMessages struct {
	Tips []string `json:"tips"`
}

// LoadTips reads the embedded tips, falling back to a single one.
func LoadTips() []string {
	var tips tipMessages
	raw, err := embeddata.ReadTips()
	if err == nil {
		err = json.Unmarshal(raw, &tips)
	}
	if err != nil {
		log.Printf("motd: %v", err)
	}
	if len(tips.Tips) == 0 {
		return []string{"Bless you!"}
	}
	return tips.Tips
}

func New(msgs []string, frameWidth, repeats int, interval time.Duration, rng *rand.Rand) Model {
	if len(msgs) == 0 {
		msgs = []string{"Bless you!"}
	}
	return Model{
		msgs:       msgs,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    []rune(msgs[rng.Intn(len(msgs))]),
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if m.doneCount >= m.repeats {
		if time.Since(m.lastShown) >= m.interval {
			m.current = []rune(m.msgs[m.rng.Intn(len(m.msgs))])
			m.lastShown = time.Now()
			m.doneCount = 0
			m.offset = 0
		}
	} else {
		m.offset++
		if m.offset >= len(m.current)+m.frameWidth {
			m.offset = 0
			m.doneCount++
		}
	}
	return m, Tick()
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	spaces := []rune(strings.Repeat(" ", m.frameWidth))
	text := append(append(append([]rune{}, spaces...), m.current...), spaces...)

	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
