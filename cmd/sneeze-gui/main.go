package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vinser/sneeze/internal/flags"
	"github.com/vinser/sneeze/internal/gfx"
	"github.com/vinser/sneeze/internal/sound"
)

func main() {
	cfg, err := flags.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if cfg.Debug {
		log.Printf("config: %+v", cfg)
	}

	sfx, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		log.Printf("no audio, playing muted: %v", err)
	} else {
		defer sfx.Close()
		if err := sfx.LoadSamples(cfg.SoundDir); err != nil {
			log.Fatalf("sounds: %v", err)
		}
		if cfg.Mute {
			sfx.Mute()
		}
	}

	g := gfx.New(cfg, sfx)
	ebiten.SetWindowTitle("Sneeze Attack!")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.Size())
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
