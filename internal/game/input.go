package game

import "github.com/vinser/sneeze/internal/dweller"

// Input is what the player did since the previous tick.
type Input struct {
	Dir     dweller.Direction // direction key held down, dweller.No if none
	AnyKey  bool              // a key went down
	Digit   int               // digit key that went down, 0 if none
	Pointer bool              // a mouse button went down
}

// StopDigit ends the game on the level won screen instead of going on.
const StopDigit = 1
