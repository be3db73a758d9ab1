package game

import (
	"log"

	"github.com/vinser/sneeze/internal/config"
	"github.com/vinser/sneeze/internal/dweller"
	"github.com/vinser/sneeze/internal/floor"
	"github.com/vinser/sneeze/internal/score"
	"github.com/vinser/sneeze/internal/sound"
)

const (
	tissueRelief  = 20.0 // meter drop on a tissue
	allergenShock = 30.0 // meter rise on an allergen
	hurrySeconds  = 5
)

// play runs one tick of a level: steer, glide, then the rules.
func (s *Session) play(in Input) {
	if s.phase == Playing && in.Dir != dweller.No {
		s.player.RequestMove(in.Dir, s.floor.Grid)
	}
	s.player.Advance(s.cfg.StepDistance())

	s.clock++
	s.updateMeter()
	if s.canInteract() {
		pos := s.player.Pos()
		s.interact(pos.X, pos.Y)
	}
	s.evaluate()
}

// canInteract holds while the player stands still on a cell and is not sneezing.
func (s *Session) canInteract() bool {
	return s.phase == Playing && !s.player.Moving()
}

// growth is the passive meter rise per tick on the current level.
func (s *Session) growth() float64 {
	return s.cfg.BaseRate * (1 + 0.1*float64(s.level-1))
}

func (s *Session) updateMeter() {
	if s.phase == Incapacitated {
		s.sneezeLeft--
		if s.sneezeLeft <= 0 {
			s.sneezeLeft = 0
			s.meter.Reset()
			s.setPhase(Playing)
		}
		return
	}
	s.meter.Add(s.growth())
	if s.meter.Full() {
		s.meter.Saturate()
		s.sneezeLeft = s.cfg.SneezeFrames
		s.setPhase(Incapacitated)
		s.playSound(sound.SNEEZE)
	}
}

// interact picks up whatever lies in the cell. Each kind is checked on its own.
func (s *Session) interact(x, y int) {
	if s.floor.Take(floor.Dot, x, y) {
		s.score.Add(score.DotPoints)
	}
	if s.floor.Take(floor.Tissue, x, y) {
		s.meter.Sub(tissueRelief)
		s.score.Add(score.TissuePoints)
		s.playSound(sound.TISSUE)
	}
	if s.floor.Take(floor.Allergen, x, y) {
		s.meter.Add(allergenShock)
		s.playSound(sound.ALLERGEN)
	}
}

// evaluate ends the level: cleared wins before time runs out.
func (s *Session) evaluate() {
	if s.floor.Count(floor.Dot) == 0 {
		s.score.Add(score.LevelBonus * s.level)
		if s.level < config.MaxLevel {
			s.setPhase(LevelWon)
		} else {
			s.setPhase(GameCompleted)
		}
		return
	}
	if s.clock > s.cfg.LevelFrames() {
		s.setPhase(Lost)
	}
}

func (s *Session) playSound(name string) {
	if err := s.sound.Play(name); err != nil {
		log.Printf("sound %s: %v", name, err)
	}
}
