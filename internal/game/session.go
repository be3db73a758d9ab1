// Package game holds a single play session: the maze, the collectibles,
// the player, the sneeze meter and the phase the game is in. Everything
// changes in Tick, once per frame.
package game

import (
	"log"
	"math/rand"

	"github.com/vinser/sneeze/internal/config"
	"github.com/vinser/sneeze/internal/dweller"
	"github.com/vinser/sneeze/internal/floor"
	"github.com/vinser/sneeze/internal/meter"
	"github.com/vinser/sneeze/internal/score"
)

// Sounder plays a named sound and forgets about it.
type Sounder interface {
	Play(name string) error
}

type mute struct{}

func (mute) Play(string) error { return nil }

// Session is the whole game state of one player.
type Session struct {
	cfg   config.Config
	rng   *rand.Rand
	sound Sounder

	phase      Phase
	level      int
	floor      *floor.Floor
	player     *dweller.Player
	meter      meter.Meter
	score      *score.Score
	clock      int // ticks since the level started
	sneezeLeft int // ticks of lockout left
}

// New starts a session on the instructions screen, or right in a level if
// cfg.Level is set. cfg must be valid. A nil sounder mutes the game.
func New(cfg config.Config, rng *rand.Rand, sounder Sounder) *Session {
	if sounder == nil {
		sounder = mute{}
	}
	s := &Session{
		cfg:   cfg,
		rng:   rng,
		sound: sounder,
		phase: Instructions,
		level: config.MinLevel,
		score: score.NewScore(),
	}
	s.reset()
	if cfg.Level != 0 {
		s.level = cfg.Level
		s.reset()
		s.setPhase(Playing)
	}
	return s
}

// reset rebuilds the level from a fresh seed.
func (s *Session) reset() {
	seed := s.rng.Int63()
	odds := floor.Odds{Tissue: s.cfg.TissueOdds, Allergen: s.cfg.AllergenOdds}
	s.load(floor.New(s.level, seed, s.cfg.Rows, s.cfg.Cols, odds))
	log.Printf("level %d reset: seed=%d dots=%d tissues=%d allergens=%d",
		s.level, seed, s.floor.Count(floor.Dot), s.floor.Count(floor.Tissue), s.floor.Count(floor.Allergen))
}

// load puts the player on the start of f with a clean slate.
func (s *Session) load(f *floor.Floor) {
	s.floor = f
	s.player = dweller.NewPlayer(dweller.Position{X: f.Start.X, Y: f.Start.Y}, s.cfg.CellSize)
	s.meter.Reset()
	s.score.Reset()
	s.clock = 0
	s.sneezeLeft = 0
}

func (s *Session) setPhase(p Phase) {
	if s.phase != p {
		log.Printf("phase %s -> %s (level %d, score %d)", s.phase, p, s.level, s.score.Get())
	}
	s.phase = p
}

// Tick advances the game by one frame.
func (s *Session) Tick(in Input) {
	switch s.phase {
	case Instructions:
		if in.AnyKey {
			s.setPhase(LevelSelect)
		}
	case LevelSelect:
		if in.Digit >= config.MinLevel && in.Digit <= config.MaxLevel {
			s.level = in.Digit
			s.reset()
			s.setPhase(Playing)
		}
	case Playing, Incapacitated:
		s.play(in)
	case LevelWon:
		if !in.AnyKey {
			return
		}
		if in.Digit == StopDigit {
			s.setPhase(GameCompleted)
			return
		}
		s.level++
		s.reset()
		s.setPhase(Playing)
	case GameCompleted:
		// Stays until the program quits
	case Lost:
		if in.AnyKey || in.Pointer {
			s.reset()
			s.setPhase(Playing)
		}
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Level returns the current level, 1 to 3.
func (s *Session) Level() int { return s.level }

// Floor returns the current maze and its collectibles. Callers must not modify it.
func (s *Session) Floor() *floor.Floor { return s.floor }

// Player returns the player. Callers must not modify it.
func (s *Session) Player() *dweller.Player { return s.player }

// Meter returns the sneeze meter value.
func (s *Session) Meter() float64 { return s.meter.Value() }

// MeterFraction returns the sneeze meter fill in [0, 1].
func (s *Session) MeterFraction() float64 { return s.meter.Fraction() }

// Score returns the points of the current level.
func (s *Session) Score() int { return s.score.Get() }

// HighScore returns the best level score of this run.
func (s *Session) HighScore() int { return s.score.GetHigh() }

// Clock returns the ticks elapsed on the current level.
func (s *Session) Clock() int { return s.clock }

// Sneezing reports whether the player is locked by a sneeze.
func (s *Session) Sneezing() bool { return s.phase == Incapacitated }

// TimeLeft returns the whole seconds left on the level.
func (s *Session) TimeLeft() int {
	left := (s.cfg.LevelFrames() - s.clock) / s.cfg.FPS
	if left < 0 {
		return 0
	}
	return left
}

// Hurry reports whether the level is in its last seconds.
func (s *Session) Hurry() bool {
	return s.phase.InPlay() && s.TimeLeft() <= hurrySeconds
}

// Config returns the settings the session runs with.
func (s *Session) Config() config.Config { return s.cfg }
