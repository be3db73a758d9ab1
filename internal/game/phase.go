package game

// Phase is the screen the game is on.
type Phase int

const (
	Instructions Phase = iota
	LevelSelect
	Playing
	Incapacitated // a sneeze; still playing but the player is locked
	LevelWon
	GameCompleted
	Lost
)

func (p Phase) String() string {
	switch p {
	case Instructions:
		return "instructions"
	case LevelSelect:
		return "level-select"
	case Playing:
		return "playing"
	case Incapacitated:
		return "incapacitated"
	case LevelWon:
		return "level-won"
	case GameCompleted:
		return "game-completed"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// InPlay reports whether a level is running, sneezing included.
func (p Phase) InPlay() bool {
	return p == Playing || p == Incapacitated
}
