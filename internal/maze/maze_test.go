package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable flood fills open cells from the start.
func reachable(g *Grid) map[Point]bool {
	seen := map[Point]bool{Start: true}
	queue := []Point{Start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if g.IsOpen(n.X, n.Y) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// edges counts undirected adjacencies between open cells.
func edges(g *Grid) int {
	n := 0
	for _, p := range g.OpenCells() {
		if g.IsOpen(p.X+1, p.Y) {
			n++
		}
		if g.IsOpen(p.X, p.Y+1) {
			n++
		}
	}
	return n
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{3, 3}, {5, 5}, {7, 11}, {21, 21}, {15, 31},
	}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			g, err := Generate(sz.rows, sz.cols, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			open := g.OpenCells()
			assert.True(t, g.IsOpen(Start.X, Start.Y), "start must be open")
			assert.Len(t, reachable(g), len(open), "%dx%d seed %d: not connected", sz.rows, sz.cols, seed)
			assert.Equal(t, len(open), edges(g)+1, "%dx%d seed %d: has cycles", sz.rows, sz.cols, seed)
		}
	}
}

func TestGenerateVisitsEveryRoom(t *testing.T) {
	g, err := Generate(21, 21, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	for y := 1; y < g.Rows()-1; y += 2 {
		for x := 1; x < g.Cols()-1; x += 2 {
			assert.True(t, g.IsOpen(x, y), "room (%d,%d) left closed", x, y)
		}
	}
	// Rooms and the walls linking them: a spanning tree over 10x10 rooms.
	assert.Len(t, g.OpenCells(), 100+99)
}

func TestGenerateKeepsBorder(t *testing.T) {
	g, err := Generate(9, 13, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	for x := 0; x < g.Cols(); x++ {
		assert.Equal(t, Wall, g.At(x, 0))
		assert.Equal(t, Wall, g.At(x, g.Rows()-1))
	}
	for y := 0; y < g.Rows(); y++ {
		assert.Equal(t, Wall, g.At(0, y))
		assert.Equal(t, Wall, g.At(g.Cols()-1, y))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(21, 21, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := Generate(21, 21, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	c, err := Generate(21, 21, rand.New(rand.NewSource(100)))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerateInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{2, 5}, {5, 4}, {1, 1}, {0, 7}} {
		_, err := Generate(sz[0], sz[1], rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidSize, "%v", sz)
	}
}

func TestGridBounds(t *testing.T) {
	g, err := Parse(
		"#####",
		"#...#",
		"#####",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.True(t, g.IsOpen(2, 1))
	assert.False(t, g.IsOpen(0, 1))
	assert.False(t, g.IsOpen(-1, 1))
	assert.False(t, g.IsOpen(5, 1))
	assert.Equal(t, Wall, g.At(10, 10))
	assert.Equal(t, []Point{{1, 1}, {2, 1}, {3, 1}}, g.OpenCells())
	assert.Equal(t, "#####\n#...#\n#####\n", g.String())
}

func TestParseRaggedRows(t *testing.T) {
	_, err := Parse("###", "#.", "###")
	assert.Error(t, err)
}
