package score

// Points awarded by the game.
const (
	DotPoints    = 10
	TissuePoints = 20
	LevelBonus   = 100 // multiplied by the level number
)

// Score is the points gained on the current level plus the best result of the run.
type Score struct {
	value int
	high  int
}

func NewScore() *Score {
	return &Score{}
}

// Add adds points. Negative values are ignored so the score never goes down.
func (s *Score) Add(points int) {
	if points <= 0 {
		return
	}
	s.value += points
	if s.value > s.high {
		s.high = s.value
	}
}

func (s *Score) Get() int {
	return s.value
}

// Reset starts a new level from zero. The high score survives.
func (s *Score) Reset() {
	s.value = 0
}

func (s *Score) GetHigh() int {
	return s.high
}
