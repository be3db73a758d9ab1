package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/sneeze/internal/config"
	"github.com/vinser/sneeze/internal/dweller"
	"github.com/vinser/sneeze/internal/floor"
	"github.com/vinser/sneeze/internal/maze"
	"github.com/vinser/sneeze/internal/sound"
)

type recorder struct {
	played []string
}

func (r *recorder) Play(name string) error {
	r.played = append(r.played, name)
	return nil
}

func (r *recorder) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Rows, cfg.Cols = 5, 5
	return cfg
}

func newSession(t *testing.T, cfg config.Config) (*Session, *recorder) {
	t.Helper()
	require.NoError(t, cfg.Validate())
	rec := &recorder{}
	return New(cfg, rand.New(rand.NewSource(7)), rec), rec
}

// onFloor starts playing the level on a hand drawn maze without items.
func onFloor(t *testing.T, s *Session, level int, lines ...string) *floor.Floor {
	t.Helper()
	g, err := maze.Parse(lines...)
	require.NoError(t, err)
	f := floor.FromGrid(g)
	s.level = level
	s.load(f)
	s.phase = Playing
	return f
}

// walk steps the player through the maze, one whole cell per direction.
func walk(t *testing.T, s *Session, dirs ...dweller.Direction) {
	t.Helper()
	for _, d := range dirs {
		s.Tick(Input{Dir: d})
		require.True(t, s.Player().Moving() || !s.Phase().InPlay(), "move %s refused", d)
		for i := 0; s.Player().Moving(); i++ {
			require.Less(t, i, 100, "transit never ends")
			s.Tick(Input{})
		}
	}
}

func idle(s *Session, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Tick(Input{})
	}
}

var openRoom = []string{
	"#####",
	"#...#",
	"#...#",
	"#...#",
	"#####",
}

func TestClearMaze(t *testing.T) {
	s, _ := newSession(t, testConfig())
	f := onFloor(t, s, 1, openRoom...)
	for _, p := range f.Grid.OpenCells() {
		f.Put(floor.Dot, p)
	}
	dots := f.Count(floor.Dot)
	require.Equal(t, 8, dots)

	walk(t, s, dweller.Right, dweller.Right, dweller.Down, dweller.Left, dweller.Left,
		dweller.Down, dweller.Right, dweller.Right)

	assert.Zero(t, f.Count(floor.Dot))
	assert.Equal(t, LevelWon, s.Phase())
	assert.Equal(t, dots*10+100, s.Score())
	assert.Equal(t, s.Score(), s.HighScore())
}

func TestHazardOnlyOnce(t *testing.T) {
	cfg := testConfig()
	cfg.BaseRate = 0
	s, rec := newSession(t, cfg)
	f := onFloor(t, s, 1,
		"#####",
		"#...#",
		"#####",
	)
	require.True(t, f.Put(floor.Allergen, maze.Point{X: 2, Y: 1}))
	require.True(t, f.Put(floor.Dot, maze.Point{X: 3, Y: 1}))

	walk(t, s, dweller.Right)
	assert.Equal(t, 30.0, s.Meter())
	assert.False(t, f.Has(floor.Allergen, 2, 1))
	assert.Equal(t, 1, rec.count(sound.ALLERGEN))

	walk(t, s, dweller.Left, dweller.Right)
	assert.Equal(t, 30.0, s.Meter())
	assert.Equal(t, 1, rec.count(sound.ALLERGEN))
	assert.Equal(t, Playing, s.Phase())
	assert.Zero(t, s.Score())
}

func TestTissue(t *testing.T) {
	cfg := testConfig()
	cfg.BaseRate = 0
	s, rec := newSession(t, cfg)
	f := onFloor(t, s, 1,
		"#######",
		"#.....#",
		"#######",
	)
	f.Put(floor.Tissue, maze.Point{X: 2, Y: 1})
	f.Put(floor.Allergen, maze.Point{X: 3, Y: 1})
	f.Put(floor.Tissue, maze.Point{X: 4, Y: 1})
	f.Put(floor.Dot, maze.Point{X: 5, Y: 1})

	walk(t, s, dweller.Right)
	assert.Zero(t, s.Meter(), "meter stays at zero")
	assert.Equal(t, 20, s.Score())

	walk(t, s, dweller.Right, dweller.Right)
	assert.Equal(t, 10.0, s.Meter())
	assert.Equal(t, 40, s.Score())
	assert.Equal(t, 2, rec.count(sound.TISSUE))
}

func TestNoPickupMidTransit(t *testing.T) {
	s, _ := newSession(t, testConfig())
	f := onFloor(t, s, 1,
		"#####",
		"#...#",
		"#####",
	)
	f.Put(floor.Dot, maze.Point{X: 2, Y: 1})
	f.Put(floor.Dot, maze.Point{X: 3, Y: 1})

	s.Tick(Input{Dir: dweller.Right})
	for s.Player().Moving() {
		assert.True(t, f.Has(floor.Dot, 2, 1))
		s.Tick(Input{})
	}
	assert.False(t, f.Has(floor.Dot, 2, 1))
	assert.Equal(t, 10, s.Score())
}

func TestTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.LevelSeconds = 1
	s, _ := newSession(t, cfg)
	f := onFloor(t, s, 1, openRoom...)
	f.Put(floor.Dot, maze.Point{X: 3, Y: 3})

	idle(s, cfg.LevelFrames())
	assert.Equal(t, Playing, s.Phase())
	assert.Zero(t, s.TimeLeft())

	s.Tick(Input{})
	assert.Equal(t, Lost, s.Phase())
	assert.Equal(t, 1, f.Count(floor.Dot))
}

func TestSneezeCycle(t *testing.T) {
	cfg := testConfig()
	cfg.BaseRate = 10
	s, rec := newSession(t, cfg)
	f := onFloor(t, s, 1, openRoom...)
	f.Put(floor.Dot, maze.Point{X: 3, Y: 3})

	idle(s, 9)
	require.Equal(t, Playing, s.Phase())
	s.Tick(Input{})
	require.Equal(t, Incapacitated, s.Phase())
	assert.Equal(t, 100.0, s.Meter())
	assert.True(t, s.Sneezing())

	for i := 1; i < cfg.SneezeFrames; i++ {
		s.Tick(Input{Dir: dweller.Right})
		require.Equal(t, Incapacitated, s.Phase(), "tick %d", i)
		assert.False(t, s.Player().Moving(), "locked while sneezing")
		assert.Equal(t, 100.0, s.Meter())
	}
	s.Tick(Input{})
	assert.Equal(t, Playing, s.Phase())
	assert.Zero(t, s.Meter())
	assert.Equal(t, 1, rec.count(sound.SNEEZE))

	s.Tick(Input{})
	assert.Equal(t, 10.0, s.Meter())
}

func TestAllergenOverflowSneezes(t *testing.T) {
	cfg := testConfig()
	cfg.BaseRate = 0
	s, rec := newSession(t, cfg)
	f := onFloor(t, s, 1, openRoom...)
	f.Put(floor.Allergen, maze.Point{X: 2, Y: 1})
	f.Put(floor.Dot, maze.Point{X: 3, Y: 3})
	s.meter.Add(90)

	walk(t, s, dweller.Right)
	assert.Equal(t, 120.0, s.Meter(), "no clamp on contact")

	s.Tick(Input{})
	assert.Equal(t, Incapacitated, s.Phase())
	assert.Equal(t, 100.0, s.Meter())
	assert.Equal(t, 1, rec.count(sound.SNEEZE))
}

func TestMeterGrowthByLevel(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 0.1},
		{2, 0.11},
		{3, 0.12},
	}
	for _, tt := range tests {
		s, _ := newSession(t, testConfig())
		f := onFloor(t, s, tt.level, openRoom...)
		f.Put(floor.Dot, maze.Point{X: 3, Y: 3})
		s.Tick(Input{})
		assert.InDelta(t, tt.want, s.Meter(), 1e-9, "level %d", tt.level)
	}
}

func TestPhaseFlow(t *testing.T) {
	s, _ := newSession(t, testConfig())
	require.Equal(t, Instructions, s.Phase())

	s.Tick(Input{})
	assert.Equal(t, Instructions, s.Phase())
	s.Tick(Input{AnyKey: true})
	require.Equal(t, LevelSelect, s.Phase())

	s.Tick(Input{AnyKey: true})
	s.Tick(Input{AnyKey: true, Digit: 4})
	assert.Equal(t, LevelSelect, s.Phase())

	s.Tick(Input{AnyKey: true, Digit: 2})
	require.Equal(t, Playing, s.Phase())
	assert.Equal(t, 2, s.Level())
	assert.Zero(t, s.Clock())
	assert.Positive(t, s.Floor().Count(floor.Dot)+s.Floor().Count(floor.Tissue)+s.Floor().Count(floor.Allergen))
}

func TestLevelWonNext(t *testing.T) {
	s, _ := newSession(t, testConfig())
	onFloor(t, s, 1, openRoom...)
	s.Tick(Input{})
	require.Equal(t, LevelWon, s.Phase(), "no dots left")
	assert.Equal(t, 100, s.Score())

	s.Tick(Input{})
	assert.Equal(t, LevelWon, s.Phase())

	s.Tick(Input{AnyKey: true, Digit: 2})
	assert.Equal(t, Playing, s.Phase())
	assert.Equal(t, 2, s.Level())
	assert.Zero(t, s.Score())
	assert.Equal(t, 100, s.HighScore())
}

func TestLevelWonStop(t *testing.T) {
	s, _ := newSession(t, testConfig())
	onFloor(t, s, 2, openRoom...)
	s.Tick(Input{})
	require.Equal(t, LevelWon, s.Phase())
	assert.Equal(t, 200, s.Score())

	s.Tick(Input{AnyKey: true, Digit: StopDigit})
	assert.Equal(t, GameCompleted, s.Phase())

	s.Tick(Input{AnyKey: true, Pointer: true})
	assert.Equal(t, GameCompleted, s.Phase(), "terminal")
}

func TestLastLevelCompletesGame(t *testing.T) {
	s, _ := newSession(t, testConfig())
	onFloor(t, s, config.MaxLevel, openRoom...)
	s.Tick(Input{})
	assert.Equal(t, GameCompleted, s.Phase())
	assert.Equal(t, 300, s.Score())
}

func TestLostRestart(t *testing.T) {
	cfg := testConfig()
	cfg.LevelSeconds = 1
	s, _ := newSession(t, cfg)
	f := onFloor(t, s, 3, openRoom...)
	f.Put(floor.Dot, maze.Point{X: 3, Y: 3})
	idle(s, cfg.LevelFrames()+1)
	require.Equal(t, Lost, s.Phase())

	s.Tick(Input{})
	assert.Equal(t, Lost, s.Phase())

	s.Tick(Input{Pointer: true})
	assert.Equal(t, Playing, s.Phase())
	assert.Equal(t, 3, s.Level(), "same level again")
	assert.Zero(t, s.Clock())
	assert.Zero(t, s.Meter())
	assert.Equal(t, maze.Start, s.Floor().Start)
	assert.Equal(t, dweller.Position{X: 1, Y: 1}, s.Player().Pos())
}

func TestStartLevelFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Level = 3
	s, _ := newSession(t, cfg)
	assert.Equal(t, Playing, s.Phase())
	assert.Equal(t, 3, s.Level())
}

func TestTimeLeftAndHurry(t *testing.T) {
	cfg := testConfig()
	cfg.LevelSeconds = 10
	s, _ := newSession(t, cfg)
	f := onFloor(t, s, 1, openRoom...)
	f.Put(floor.Dot, maze.Point{X: 3, Y: 3})

	assert.Equal(t, 10, s.TimeLeft())
	assert.False(t, s.Hurry())
	idle(s, 4*cfg.FPS)
	assert.Equal(t, 6, s.TimeLeft())
	assert.False(t, s.Hurry())
	idle(s, cfg.FPS)
	assert.Equal(t, 5, s.TimeLeft())
	assert.True(t, s.Hurry())
}

func TestNilSounder(t *testing.T) {
	cfg := testConfig()
	cfg.BaseRate = 0
	s := New(cfg, rand.New(rand.NewSource(1)), nil)
	f := onFloor(t, s, 1, openRoom...)
	f.Put(floor.Allergen, maze.Point{X: 2, Y: 1})
	f.Put(floor.Dot, maze.Point{X: 3, Y: 3})
	walk(t, s, dweller.Right)
	assert.Equal(t, 30.0, s.Meter())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "incapacitated", Incapacitated.String())
	assert.True(t, Incapacitated.InPlay())
	assert.False(t, LevelWon.InPlay())
}
