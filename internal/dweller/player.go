package dweller

import "math"

// snapEpsilon absorbs float rounding so a transit ends on the frame it should.
const snapEpsilon = 1e-9

// Walkable tells which cells may be entered. Cells off the map must report false.
type Walkable interface {
	IsOpen(x, y int) bool
}

// Player is the maze runner. It stands on a cell or glides toward an adjacent one.
type Player struct {
	position  Position
	target    Position
	at        Point
	moving    bool
	direction Direction
	cellSize  float64
}

// NewPlayer returns a player standing at the center of the home cell.
func NewPlayer(home Position, cellSize float64) *Player {
	return &Player{
		position:  home,
		target:    home,
		at:        Center(home, cellSize),
		direction: Right,
		cellSize:  cellSize,
	}
}

// Center returns the pixel center of a cell.
func Center(pos Position, cellSize float64) Point {
	return Point{
		X: float64(pos.X)*cellSize + cellSize/2,
		Y: float64(pos.Y)*cellSize + cellSize/2,
	}
}

// Pos returns the cell the player occupies. During a transit it is the cell being left.
func (p *Player) Pos() Position {
	return p.position
}

// Target returns the cell the player is heading to.
func (p *Player) Target() Position {
	return p.target
}

// At returns the player's pixel position.
func (p *Player) At() Point {
	return p.at
}

// Moving reports whether a transit is in progress.
func (p *Player) Moving() bool {
	return p.moving
}

// Dir returns the direction of the last accepted move.
func (p *Player) Dir() Direction {
	return p.direction
}

// RequestMove starts a transit to the neighbouring cell in direction d.
// It is ignored while moving and when the neighbour is a wall or off the map.
func (p *Player) RequestMove(d Direction, w Walkable) bool {
	if p.moving || d == No {
		return false
	}
	dx, dy := d.Offset()
	next := Position{X: p.position.X + dx, Y: p.position.Y + dy}
	if !w.IsOpen(next.X, next.Y) {
		return false
	}
	p.moving = true
	p.target = next
	p.direction = d
	return true
}

// Remaining returns the pixel distance left to the target center.
func (p *Player) Remaining() float64 {
	c := Center(p.target, p.cellSize)
	return math.Hypot(c.X-p.at.X, c.Y-p.at.Y)
}

// Advance moves the player step pixels toward the target center and
// lands on it once the rest of the way fits into one step.
func (p *Player) Advance(step float64) {
	if !p.moving {
		return
	}
	c := Center(p.target, p.cellSize)
	dx, dy := c.X-p.at.X, c.Y-p.at.Y
	dist := math.Hypot(dx, dy)
	if dist <= step+snapEpsilon {
		p.at = c
		p.position = p.target
		p.moving = false
		return
	}
	p.at.X += step * dx / dist
	p.at.Y += step * dy / dist
}

// Cell returns the cell nearest to the player's pixel position.
func (p *Player) Cell() Position {
	return Position{
		X: int(math.Floor(p.at.X / p.cellSize)),
		Y: int(math.Floor(p.at.Y / p.cellSize)),
	}
}
