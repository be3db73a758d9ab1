// Package gfx is the window front end: it draws the session with ebiten and
// samples keyboard and mouse state once per tick.
package gfx

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/vinser/sneeze/internal/config"
	"github.com/vinser/sneeze/internal/dweller"
	"github.com/vinser/sneeze/internal/floor"
	"github.com/vinser/sneeze/internal/game"
	"github.com/vinser/sneeze/internal/model/levels"
	"github.com/vinser/sneeze/internal/sound"
)

const (
	hudHeight      = 60
	hurryFlashTick = 9
)

var (
	colorWall     = color.RGBA{0x3c, 0x3c, 0x8c, 0xff}
	colorFloor    = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorDot      = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorTissue   = color.RGBA{0x80, 0xff, 0xff, 0xff}
	colorAllergen = color.RGBA{0xe0, 0xc0, 0x20, 0xff}
	colorPlayer   = color.RGBA{0xff, 0x69, 0xb4, 0xff}
	colorSneeze   = color.RGBA{0xff, 0x30, 0x30, 0xff}
	colorMeterBg  = color.RGBA{0x40, 0x40, 0x40, 0xff}
	colorMeter    = color.RGBA{0xff, 0x80, 0x40, 0xff}
	colorHurryOn  = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorHurryOff = color.RGBA{0x00, 0x00, 0x80, 0xff}
)

var dirKeys = []struct {
	dir  dweller.Direction
	keys []ebiten.Key
}{
	{dweller.Up, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{dweller.Down, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{dweller.Left, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{dweller.Right, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

var digitKeys = map[ebiten.Key]int{
	ebiten.KeyDigit1: 1, ebiten.KeyNumpad1: 1,
	ebiten.KeyDigit2: 2, ebiten.KeyNumpad2: 2,
	ebiten.KeyDigit3: 3, ebiten.KeyNumpad3: 3,
}

// Game implements ebiten.Game.
type Game struct {
	cfg     config.Config
	session *game.Session
	sound   *sound.Manager
	phase   game.Phase
	pressed []ebiten.Key
}

// New builds the window game around a fresh session. sfx may be nil.
func New(cfg config.Config, sfx *sound.Manager) *Game {
	rng := rand.New(rand.NewSource(cfg.Seeded()))
	g := &Game{
		cfg:     cfg,
		session: game.New(cfg, rng, sfx),
		sound:   sfx,
	}
	g.phase = g.session.Phase()
	if g.phase.InPlay() {
		g.playBackground()
	}
	return g
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	return g.mazeWidth(), g.mazeHeight() + hudHeight
}

func (g *Game) mazeWidth() int  { return int(float64(g.cfg.Cols) * g.cfg.CellSize) }
func (g *Game) mazeHeight() int { return int(float64(g.cfg.Rows) * g.cfg.CellSize) }

// Update runs one tick: sample input, then advance the session.
func (g *Game) Update() error {
	in := game.Input{}
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		switch k {
		case ebiten.KeyEscape, ebiten.KeyQ:
			log.Printf("quit at level %d, best %d", g.session.Level(), g.session.HighScore())
			return ebiten.Termination
		case ebiten.KeyM:
			g.toggleMute()
			continue
		}
		in.AnyKey = true
		if d, ok := digitKeys[k]; ok && in.Digit == 0 {
			in.Digit = d
		}
	}
	for _, dk := range dirKeys {
		for _, k := range dk.keys {
			if ebiten.IsKeyPressed(k) {
				in.Dir = dk.dir
			}
		}
	}
	in.Pointer = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	g.session.Tick(in)
	if p := g.session.Phase(); p != g.phase {
		if p.InPlay() && !g.phase.InPlay() {
			g.playBackground()
		}
		if !p.InPlay() {
			g.sound.StopListed(sound.BACKGROUND)
		}
		g.phase = p
	}
	return nil
}

func (g *Game) playBackground() {
	if err := g.sound.PlayLoop(sound.BACKGROUND); err != nil {
		log.Printf("background music: %v", err)
	}
}

func (g *Game) toggleMute() {
	if !g.sound.Muted() {
		g.sound.Mute()
		return
	}
	g.sound.Unmute()
	if g.phase.InPlay() {
		g.playBackground()
	}
}

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	switch g.phase {
	case game.Instructions:
		ebitenutil.DebugPrintAt(screen, instructions, 20, 20)
	case game.LevelSelect:
		msg := "Choose a level:\n\n"
		for l := config.MinLevel; l <= config.MaxLevel; l++ {
			msg += fmt.Sprintf("  %d - %s\n", l, levels.Label(l))
		}
		ebitenutil.DebugPrintAt(screen, msg, 20, 20)
	case game.Playing, game.Incapacitated:
		g.drawMaze(screen)
		g.drawHUD(screen)
	case game.LevelWon:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Level %d cleared! Score: %d\n\nPress any key for the next level, 1 to stop.", s.Level(), s.Score()), 20, 20)
	case game.GameCompleted:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Bless you! You made it.\n\nLast level score: %d\nBest level score: %d\n\nEsc to quit.", s.Score(), s.HighScore()), 20, 20)
	case game.Lost:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Time is up! Score: %d\n\nPress any key or click to try again.", s.Score()), 20, 20)
	}
}

const instructions = `SNEEZE ATTACK!

Collect every dot before the time runs out.
Tissues calm your nose, allergens make it worse.
A full sneeze meter freezes you for a second.

Arrows or WASD - move    M - mute    Esc - quit

Press any key to continue.`

func (g *Game) drawMaze(screen *ebiten.Image) {
	s := g.session
	f := s.Floor()
	cs := float32(g.cfg.CellSize)
	screen.Fill(colorFloor)
	for y := 0; y < f.Grid.Rows(); y++ {
		for x := 0; x < f.Grid.Cols(); x++ {
			px, py := float32(x)*cs, float32(y)*cs
			if !f.Grid.IsOpen(x, y) {
				vector.DrawFilledRect(screen, px, py, cs, cs, colorWall, false)
				continue
			}
			item, ok := f.ItemAt(x, y)
			if !ok {
				continue
			}
			cx, cy := px+cs/2, py+cs/2
			switch item {
			case floor.Dot:
				vector.DrawFilledCircle(screen, cx, cy, cs/10, colorDot, true)
			case floor.Tissue:
				vector.DrawFilledRect(screen, cx-cs/4, cy-cs/4, cs/2, cs/2, colorTissue, false)
			case floor.Allergen:
				vector.DrawFilledCircle(screen, cx, cy, cs/4, colorAllergen, true)
			}
		}
	}
	at := s.Player().At()
	c := colorPlayer
	if s.Sneezing() {
		c = colorSneeze
	}
	vector.DrawFilledCircle(screen, float32(at.X), float32(at.Y), cs*0.4, c, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	top := float32(g.mazeHeight())
	width := float32(g.mazeWidth())

	if s.Hurry() {
		bg := colorHurryOff
		if (s.Clock()/hurryFlashTick)%2 == 0 {
			bg = colorHurryOn
		}
		vector.DrawFilledRect(screen, 0, top, width, hudHeight, bg, false)
	}
	status := fmt.Sprintf("Level %d (%s)  Score: %d  Best: %d  Time: %ds",
		s.Level(), levels.Label(s.Level()), s.Score(), s.HighScore(), s.TimeLeft())
	if g.sound.Muted() {
		status += "  [muted]"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, int(top)+6)

	barX, barY, barW, barH := float32(60), top+30, width-80, float32(14)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorMeterBg, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(s.MeterFraction()), barH, colorMeter, false)
	label := "Nose"
	if s.Sneezing() {
		label = "ACHOO"
	}
	ebitenutil.DebugPrintAt(screen, label, 10, int(barY))
}

// Layout keeps a fixed logical screen and lets ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
