package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/sneeze/internal/app"
	"github.com/vinser/sneeze/internal/flags"
	"github.com/vinser/sneeze/internal/sound"
)

var version = "dev"

func main() {
	cfg, err := flags.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	// The terminal belongs to bubbletea, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "sneeze")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	log.Printf("sneeze %s starting: %+v", version, cfg)

	sfx := initSound(cfg.Mute, cfg.SoundDir)
	defer sfx.Close()

	p := tea.NewProgram(app.New(cfg, sfx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		println("Error:", err.Error())
		os.Exit(1)
	}
}

// initSound opens the audio device. Without one the game runs silent, but a
// sounds directory that cannot be loaded stops the program.
func initSound(mute bool, dir string) *sound.Manager {
	sfx, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		log.Printf("no audio, playing muted: %v", err)
		return nil
	}
	if err := sfx.LoadSamples(dir); err != nil {
		sfx.Close()
		log.SetOutput(os.Stderr)
		log.Fatalf("sounds: %v", err)
	}
	if mute {
		sfx.Mute()
	}
	return sfx
}
