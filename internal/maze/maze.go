// Package maze generates perfect mazes on odd-sized grids.
//
// Rooms sit on odd coordinates. Walls between two rooms are carved open
// only when the generator connects those rooms, so every open cell is
// reachable from the start and there is exactly one path between any two
// open cells. The outer border is never carved.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Cell is a single grid square.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// Point is a grid coordinate, X is the column and Y is the row.
type Point struct {
	X, Y int
}

// Start is the fixed entry room of every maze.
var Start = Point{X: 1, Y: 1}

var ErrInvalidSize = errors.New("maze dimensions must be odd and at least 3")

// Grid is a rows x cols field of cells.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New returns a grid filled with walls.
func New(rows, cols int) (*Grid, error) {
	if rows < 3 || cols < 3 || rows%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols), // Wall is the zero value
	}, nil
}

// Generate carves a perfect maze with a randomized depth-first backtracker
// starting at (1,1). Only the choice among unvisited neighbours uses rng.
func Generate(rows, cols int, rng *rand.Rand) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	g.set(Start, Open)
	stack := []Point{Start}
	dirs := []Point{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}
	candidates := make([]Point, 0, len(dirs))

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave the outer border alone
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && g.At(nx, ny) == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		g.set(Point{X: curr.X + d.X/2, Y: curr.Y + d.Y/2}, Open)
		next := Point{X: curr.X + d.X, Y: curr.Y + d.Y}
		g.set(next, Open)
		stack = append(stack, next)
	}

	return g, nil
}

// Parse builds a grid from text rows where '#' is a wall and any other rune is open.
func Parse(lines ...string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSize)
	}
	g, err := New(len(lines), len([]rune(lines[0])))
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != g.cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(runes), g.cols)
		}
		for x, r := range runes {
			if r != '#' {
				g.set(Point{X: x, Y: y}, Open)
			}
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at (x, y). Cells off the grid are walls.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.cols+x]
}

// IsOpen reports whether (x, y) is on the grid and walkable.
func (g *Grid) IsOpen(x, y int) bool {
	return g.At(x, y) == Open
}

// OpenCells lists the open cells in row-major order.
func (g *Grid) OpenCells() []Point {
	var open []Point
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.IsOpen(x, y) {
				open = append(open, Point{X: x, Y: y})
			}
		}
	}
	return open
}

// String draws the grid with '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.IsOpen(x, y) {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) set(p Point, c Cell) {
	g.cells[p.Y*g.cols+p.X] = c
}
