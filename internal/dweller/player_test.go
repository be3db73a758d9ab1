package dweller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor is a 5x3 map with one open row: #...#
type corridor struct{}

func (corridor) IsOpen(x, y int) bool {
	return y == 1 && x >= 1 && x <= 3
}

const cell = 33.0

func TestRequestMoveRejected(t *testing.T) {
	tests := []struct {
		name string
		from Position
		dir  Direction
	}{
		{"into wall above", Position{X: 1, Y: 1}, Up},
		{"into wall below", Position{X: 2, Y: 1}, Down},
		{"into left border", Position{X: 1, Y: 1}, Left},
		{"off the map", Position{X: 0, Y: 0}, Left},
		{"no direction", Position{X: 2, Y: 1}, No},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.from, cell)
			assert.False(t, p.RequestMove(tt.dir, corridor{}))
			assert.False(t, p.Moving())
			assert.Equal(t, tt.from, p.Target())
			assert.Equal(t, Center(tt.from, cell), p.At())
		})
	}
}

func TestRequestMoveIgnoredWhileMoving(t *testing.T) {
	p := NewPlayer(Position{X: 2, Y: 1}, cell)
	require.True(t, p.RequestMove(Right, corridor{}))
	assert.Equal(t, Center(Position{X: 2, Y: 1}, cell), p.At(), "position changes only on Advance")

	assert.False(t, p.RequestMove(Left, corridor{}))
	assert.Equal(t, Position{X: 3, Y: 1}, p.Target())
	assert.Equal(t, Right, p.Dir())
}

func TestAdvanceLandsOnTarget(t *testing.T) {
	for _, frames := range []int{1, 3, 5, 7} {
		p := NewPlayer(Position{X: 1, Y: 1}, cell)
		require.True(t, p.RequestMove(Right, corridor{}))

		step := cell / float64(frames)
		prev := p.Remaining()
		n := 0
		for p.Moving() {
			p.Advance(step)
			n++
			require.LessOrEqual(t, n, frames+1, "transit never ends")
			if p.Moving() {
				assert.Less(t, p.Remaining(), prev)
				assert.Equal(t, Position{X: 1, Y: 1}, p.Pos(), "cell switches on arrival")
			}
			prev = p.Remaining()
		}

		assert.Equal(t, frames, n, "step %.2f", step)
		assert.Equal(t, Position{X: 2, Y: 1}, p.Pos())
		assert.Equal(t, Center(Position{X: 2, Y: 1}, cell), p.At(), "no overshoot")
		assert.Zero(t, p.Remaining())
	}
}

func TestAdvanceIdle(t *testing.T) {
	p := NewPlayer(Position{X: 1, Y: 1}, cell)
	p.Advance(10)
	assert.Equal(t, Center(Position{X: 1, Y: 1}, cell), p.At())
	assert.False(t, p.Moving())
}

func TestAdvanceHalfway(t *testing.T) {
	p := NewPlayer(Position{X: 2, Y: 1}, cell)
	require.True(t, p.RequestMove(Left, corridor{}))
	p.Advance(cell * 0.4)
	assert.InDelta(t, 2.5*cell-0.4*cell, p.At().X, 1e-9)
	assert.InDelta(t, 1.5*cell, p.At().Y, 1e-9)
	assert.Equal(t, Position{X: 2, Y: 1}, p.Cell())

	p.Advance(cell * 0.4)
	assert.Equal(t, Position{X: 1, Y: 1}, p.Cell(), "drawn in the new cell past halfway")
	assert.True(t, p.Moving())
}

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1}, {Down, 0, 1}, {Left, -1, 0}, {Right, 1, 0}, {No, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Offset()
		assert.Equal(t, tt.dx, dx, tt.dir.String())
		assert.Equal(t, tt.dy, dy, tt.dir.String())
	}
}
