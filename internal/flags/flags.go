// Package flags turns the command line into game settings.
package flags

import (
	"fmt"
	"io"
	"strings"

	"github.com/vinser/sneeze/internal/config"
)

// Parse parses command-line args (without the program name) on top of the
// default settings. Help requests come back as flag.ErrHelp.
func Parse(name string, args []string, out io.Writer) (config.Config, error) {
	cfg := config.Default()
	size := cfg.Rows

	fsv := NewFlagSetWithVisit(name, out)
	fsv.IntVar(&size, "size", "z", size, "Maze width and height in cells, odd and at least 3")
	fsv.Int64Var(&cfg.Seed, "seed", "s", 0, "Random seed, 0 picks one from the clock")
	fsv.IntVar(&cfg.FPS, "fps", "", cfg.FPS, "Game ticks per second")
	fsv.IntVar(&cfg.LevelSeconds, "time", "t", cfg.LevelSeconds, "Seconds to clear a level")
	fsv.IntVar(&cfg.Level, "level", "l", 0, "Start right at level 1, 2 or 3")
	fsv.Float64Var(&cfg.BaseRate, "rate", "", cfg.BaseRate, "Sneeze meter growth per tick on level 1")
	fsv.BoolVar(&cfg.Mute, "mute", "m", false, "Mute all sounds")
	fsv.StringVar(&cfg.SoundDir, "sounds", "", "", "Directory with WAV files replacing the built-in sounds")
	fsv.StringVar(&cfg.SpriteSize, "sprite-size", "", cfg.SpriteSize, "Sprite size: small, medium, or large")
	fsv.BoolVar(&cfg.Debug, "debug", "d", false, "Write debug log to "+cfg.LogFile)

	if err := fsv.Parse(args); err != nil {
		return cfg, err
	}

	if fsv.IsCustom("size") {
		cfg.Rows, cfg.Cols = size, size
	}
	// Keep the play area the same size in pixels
	cfg.CellSize = float64(config.PlayArea / cfg.Cols)
	cfg.SpriteSize = strings.ToLower(cfg.SpriteSize)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(out, err)
		fsv.Usage()
		return cfg, err
	}
	return cfg, nil
}
