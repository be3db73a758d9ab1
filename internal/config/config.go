package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the game settings. Nothing here is persisted between runs.
type Config struct {
	Rows         int     // Maze rows, odd and >= 3
	Cols         int     // Maze columns, odd and >= 3
	CellSize     float64 // Cell size in pixels, used by the movement model
	FPS          int     // Ticks per second
	LevelSeconds int     // Time budget of a level
	StepFrames   int     // Ticks needed to cross one cell
	SneezeFrames int     // Duration of the sneeze lockout in ticks
	BaseRate     float64 // Passive sneeze meter growth per tick on level 1
	TissueOdds   float64 // Chance of an open cell to hold a tissue
	AllergenOdds float64 // Chance of an open cell to hold an allergen
	Seed         int64   // Random seed, 0 means time based
	Level        int     // Start level, 0 means ask the player
	Mute         bool    // Mute all sounds
	SoundDir     string  // Directory with WAV files overriding the built-in sounds
	SpriteSize   string  // Terminal sprite size: small, medium or large
	Debug        bool    // Write debug log to LogFile
	LogFile      string
}

const (
	// Sprite sizes
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteMedium

	// Levels
	MinLevel = 1
	MaxLevel = 3

	// PlayArea is the width and height of the maze in pixels.
	PlayArea = 700
)

var (
	ErrMazeSize   = errors.New("maze size must be odd and at least 3")
	ErrTiming     = errors.New("timing values must be positive")
	ErrOdds       = errors.New("item odds must be within [0, 1] and sum up to at most 1")
	ErrLevel      = errors.New("level must be between 1 and 3")
	ErrSpriteSize = errors.New("sprite size must be small, medium or large")
)

// Default returns the settings of the classic game: 21x21 maze in a 700px window at 30 FPS.
func Default() Config {
	return Config{
		Rows:         21,
		Cols:         21,
		CellSize:     float64(PlayArea / 21),
		FPS:          30,
		LevelSeconds: 30,
		StepFrames:   5,
		SneezeFrames: 30,
		BaseRate:     0.1,
		TissueOdds:   0.08,
		AllergenOdds: 0.05,
		SpriteSize:   SpriteDefault,
		LogFile:      "sneeze.log",
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Rows < 3 || c.Cols < 3 || c.Rows%2 == 0 || c.Cols%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrMazeSize, c.Rows, c.Cols)
	}
	if c.FPS <= 0 || c.LevelSeconds <= 0 || c.StepFrames <= 0 || c.SneezeFrames <= 0 || c.CellSize <= 0 {
		return fmt.Errorf("%w: fps=%d time=%ds step=%d sneeze=%d cell=%.1f",
			ErrTiming, c.FPS, c.LevelSeconds, c.StepFrames, c.SneezeFrames, c.CellSize)
	}
	if c.BaseRate < 0 {
		return fmt.Errorf("%w: base rate %.3f", ErrTiming, c.BaseRate)
	}
	if c.TissueOdds < 0 || c.AllergenOdds < 0 || c.TissueOdds+c.AllergenOdds > 1 {
		return fmt.Errorf("%w: tissues=%.2f allergens=%.2f", ErrOdds, c.TissueOdds, c.AllergenOdds)
	}
	if c.Level != 0 && (c.Level < MinLevel || c.Level > MaxLevel) {
		return fmt.Errorf("%w: got %d", ErrLevel, c.Level)
	}
	switch c.SpriteSize {
	case SpriteSmall, SpriteMedium, SpriteLarge:
	default:
		return fmt.Errorf("%w: got %q", ErrSpriteSize, c.SpriteSize)
	}
	return nil
}

// FrameDuration is the wall clock length of one tick.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// LevelFrames is the level time budget in ticks.
func (c Config) LevelFrames() int {
	return c.LevelSeconds * c.FPS
}

// StepDistance is the distance in pixels the player covers in one tick.
func (c Config) StepDistance() float64 {
	return c.CellSize / float64(c.StepFrames)
}

// Seeded returns the configured seed or a time based one.
func (c Config) Seeded() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
