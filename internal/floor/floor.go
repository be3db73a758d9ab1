package floor

import (
	"log"
	"math/rand"

	"github.com/kamstrup/intmap"
	"github.com/vinser/sneeze/internal/maze"
)

// ItemType represents a kind of collectible lying in a maze cell.
type ItemType int

const (
	Dot      ItemType = iota // required pickup
	Tissue                   // lowers the sneeze meter
	Allergen                 // raises the sneeze meter
	numItems
)

func (t ItemType) String() string {
	switch t {
	case Dot:
		return "dot"
	case Tissue:
		return "tissue"
	case Allergen:
		return "allergen"
	}
	return "unknown"
}

// Odds are the chances of an open cell to hold a tissue or an allergen
// instead of a dot.
type Odds struct {
	Tissue   float64
	Allergen float64
}

// Floor is one level's maze together with its collectibles.
type Floor struct {
	Level int
	Seed  int64
	Grid  *maze.Grid
	Start maze.Point
	items [numItems]*intmap.Map[int, maze.Point]
}

// New generates the maze of a level and scatters items over it.
// The same seed always yields the same floor.
func New(level int, seed int64, rows, cols int, odds Odds) *Floor {
	rng := rand.New(rand.NewSource(seed))
	g, err := maze.Generate(rows, cols, rng)
	if err != nil {
		log.Fatal(err)
	}
	f := FromGrid(g)
	f.Level = level
	f.Seed = seed
	f.scatter(odds, rng)
	return f
}

// FromGrid wraps a ready grid with empty item sets.
func FromGrid(g *maze.Grid) *Floor {
	f := &Floor{
		Grid:  g,
		Start: maze.Start,
	}
	for i := range f.items {
		f.items[i] = intmap.New[int, maze.Point](g.Rows() * g.Cols() / 2)
	}
	return f
}

// Put places an item at p unless p is the start, a wall or already holds an item.
func (f *Floor) Put(item ItemType, p maze.Point) bool {
	if p == f.Start || !f.Grid.IsOpen(p.X, p.Y) {
		return false
	}
	if _, ok := f.ItemAt(p.X, p.Y); ok {
		return false
	}
	f.items[item].Put(f.key(p.X, p.Y), p)
	return true
}

// Has reports whether the cell holds the item.
func (f *Floor) Has(item ItemType, x, y int) bool {
	if !f.Grid.InBounds(x, y) {
		return false
	}
	_, ok := f.items[item].Get(f.key(x, y))
	return ok
}

// Take removes the item from the cell and reports whether it was there.
func (f *Floor) Take(item ItemType, x, y int) bool {
	if !f.Has(item, x, y) {
		return false
	}
	f.items[item].Del(f.key(x, y))
	return true
}

// ItemAt returns the item lying in the cell, if any.
func (f *Floor) ItemAt(x, y int) (ItemType, bool) {
	for item := Dot; item < numItems; item++ {
		if f.Has(item, x, y) {
			return item, true
		}
	}
	return Dot, false
}

// Count returns how many items of the kind are left.
func (f *Floor) Count(item ItemType) int {
	return f.items[item].Len()
}

// Cells lists the cells holding the item in row-major order.
func (f *Floor) Cells(item ItemType) []maze.Point {
	var cells []maze.Point
	for _, p := range f.Grid.OpenCells() {
		if f.Has(item, p.X, p.Y) {
			cells = append(cells, p)
		}
	}
	return cells
}

func (f *Floor) key(x, y int) int {
	return y*f.Grid.Cols() + x
}
