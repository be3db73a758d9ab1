// Package app is the terminal front end: it turns bubbletea messages into
// game input, ticks the session at a fixed rate and picks the screen to draw.
package app

import (
	"log"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/sneeze/internal/config"
	"github.com/vinser/sneeze/internal/dweller"
	"github.com/vinser/sneeze/internal/floor"
	"github.com/vinser/sneeze/internal/game"
	"github.com/vinser/sneeze/internal/keys"
	"github.com/vinser/sneeze/internal/model/done"
	"github.com/vinser/sneeze/internal/model/intro"
	"github.com/vinser/sneeze/internal/model/levels"
	"github.com/vinser/sneeze/internal/model/motd"
	"github.com/vinser/sneeze/internal/model/next"
	"github.com/vinser/sneeze/internal/model/over"
	"github.com/vinser/sneeze/internal/model/play"
	"github.com/vinser/sneeze/internal/model/quit"
	"github.com/vinser/sneeze/internal/sound"
)

const (
	pageWidth  = 60
	pageHeight = 24
)

// frameMsg drives one game tick.
type frameMsg time.Time

func frame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type Model struct {
	cfg     config.Config
	session *game.Session
	sound   *sound.Manager
	keys    keys.KeyMap

	phase   game.Phase // phase seen on the last frame
	settle  int        // frames since the phase changed
	pending game.Input // input gathered since the last frame
	held    dweller.Direction
	heldFor int // frames the held direction stays pressed

	quitting bool

	// models
	intro  intro.Model
	levels levels.Model
	play   play.Model
	next   next.Model
	over   over.Model
	done   done.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New builds the front end around a fresh session. sfx may be nil.
func New(cfg config.Config, sfx *sound.Manager) Model {
	rng, tipsRng := sources(cfg)
	return newModel(cfg, sfx, rng, motd.New(motd.LoadTips(), pageWidth, 1, time.Minute, tipsRng))
}

// sources splits the seed into the game source and a separate one for the
// tips, so tip changes never shift the mazes of a seeded run.
func sources(cfg config.Config) (*rand.Rand, *rand.Rand) {
	rng := rand.New(rand.NewSource(cfg.Seeded()))
	return rng, rand.New(rand.NewSource(rng.Int63()))
}

func newModel(cfg config.Config, sfx *sound.Manager, rng *rand.Rand, tips motd.Model) Model {
	km := keys.Default()
	m := Model{
		cfg:     cfg,
		session: game.New(cfg, rng, sfx),
		sound:   sfx,
		keys:    km,
		intro:   intro.New(pageWidth, pageHeight),
		levels:  levels.New(km),
		play:    play.New(cfg.SpriteSize, km, tips),
	}
	m.phase = m.session.Phase()
	m.play.SetMuted(sfx.Muted())
	if m.phase.InPlay() {
		m.playBackground()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frame(m.cfg.FrameDuration()), m.play.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.setSizes()
		return m, tea.ClearScreen
	case quit.TickMsg:
		m.quit, cmd = m.quit.Update(msg)
		return m, cmd
	case quit.TimedoutMsg:
		return m, tea.Quit
	}
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			log.Printf("quit at level %d, best %d", m.session.Level(), m.session.HighScore())
			m.quitting = true
			m.sound.StopAll()
			m.quit = quit.New(m.session.HighScore())
			m.quit.SetSize(m.termWidth, m.termHeight)
			return m, m.quit.Init()
		case key.Matches(msg, m.keys.Mute):
			m.toggleMute()
			return m, nil
		}
		m.keyDown(msg)
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.pending.Pointer = true
		}
		return m, nil
	case motd.TickMsg:
		m.play, cmd = m.play.Update(msg)
		return m, cmd
	case frameMsg:
		m.tick()
		return m, frame(m.cfg.FrameDuration())
	}
	return m, nil
}

// keyDown records a key press for the next frame.
func (m *Model) keyDown(msg tea.KeyMsg) {
	m.pending.AnyKey = true
	if m.phase == game.LevelSelect {
		var picked int
		m.levels, picked = m.levels.Update(msg)
		if picked > 0 {
			m.pending.Digit = picked
		}
	}
	if d := keys.Digit(msg); d > 0 && m.pending.Digit == 0 {
		m.pending.Digit = d
	}
	// Terminals report key presses and repeats but never releases, so a
	// direction counts as held for as long as one cell takes to cross.
	if d := m.keys.Direction(msg); d != dweller.No {
		m.held = d
		m.heldFor = m.cfg.StepFrames
	}
}

// settleFrames is how long a new screen ignores keys. It swallows the
// repeats of a key that was held when the screen changed.
func (m Model) settleFrames() int {
	return m.cfg.FPS / 2
}

// tick feeds the gathered input to the session and reacts to phase changes.
func (m *Model) tick() {
	in := m.pending
	m.pending = game.Input{}
	if m.heldFor > 0 {
		in.Dir = m.held
		m.heldFor--
	}
	if (m.phase == game.LevelWon || m.phase == game.Lost) && m.settle < m.settleFrames() {
		in.AnyKey, in.Pointer, in.Digit = false, false, 0
	}
	m.settle++

	m.session.Tick(in)
	if p := m.session.Phase(); p != m.phase {
		m.enter(m.phase, p)
		m.phase = p
		m.settle = 0
	}
}

// enter sets up the screen of the new phase.
func (m *Model) enter(from, to game.Phase) {
	s := m.session
	switch to {
	case game.Playing:
		if !from.InPlay() {
			m.playBackground()
		}
	case game.LevelWon:
		m.sound.StopListed(sound.BACKGROUND)
		m.next = next.New(s.Level(), s.Score(), s.HighScore(), pageWidth, pageHeight)
	case game.GameCompleted:
		m.sound.StopListed(sound.BACKGROUND)
		m.done = done.New(s.Level(), s.Score(), s.HighScore(), pageWidth, pageHeight)
	case game.Lost:
		m.sound.StopListed(sound.BACKGROUND)
		m.over = over.New(s.Level(), s.Score(), s.Floor().Count(floor.Dot), pageWidth, pageHeight)
	}
	m.setSizes()
}

func (m *Model) playBackground() {
	if err := m.sound.PlayLoop(sound.BACKGROUND); err != nil {
		log.Printf("background music: %v", err)
	}
}

func (m *Model) toggleMute() {
	if m.sound.Muted() {
		m.sound.Unmute()
		if m.phase.InPlay() {
			m.playBackground()
		}
	} else {
		m.sound.Mute()
	}
	m.play.SetMuted(m.sound.Muted())
}

func (m *Model) setSizes() {
	w, h := m.termWidth, m.termHeight
	if w == 0 || h == 0 {
		return
	}
	m.intro.SetSize(w, h)
	m.levels.SetSize(w, h)
	m.play.SetSize(w, h)
	m.next.SetSize(w, h)
	m.over.SetSize(w, h)
	m.done.SetSize(w, h)
	m.quit.SetSize(w, h)
}

func (m Model) View() string {
	if m.quitting {
		return m.quit.View()
	}
	switch m.phase {
	case game.Instructions:
		return m.intro.View()
	case game.LevelSelect:
		return m.levels.View()
	case game.Playing, game.Incapacitated:
		return m.play.View(m.session)
	case game.LevelWon:
		return m.next.View()
	case game.GameCompleted:
		return m.done.View()
	case game.Lost:
		return m.over.View()
	}
	return ""
}

// Session exposes the running game.
func (m Model) Session() *game.Session {
	return m.session
}
