package main

import (
	"math"

	"github.com/go-theft-auto/tme"
)

// Direction is where the tank faces.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// angle is the counter-clockwise rotation of the texture, which points up.
func (d Direction) angle() float32 {
	switch d {
	case Down:
		return math.Pi
	case Left:
		return math.Pi / 2
	case Right:
		return -math.Pi / 2
	default:
		return 0
	}
}

func (d Direction) step() (col, row int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// DirectionFor maps a pressed direction event to a Direction.
func DirectionFor(ev tme.Event) (Direction, bool) {
	switch ev {
	case tme.EventUpPressed:
		return Up, true
	case tme.EventDownPressed:
		return Down, true
	case tme.EventLeftPressed:
		return Left, true
	case tme.EventRightPressed:
		return Right, true
	default:
		return 0, false
	}
}

// Step is the change produced by one Move.
type Step struct {
	Offset  tme.Vec2 // in clip space
	Turn    float32  // radians, in (-π, π]
	Forward bool     // the tank already faced the pressed direction
}

// Tank is a textured quad that lives on a square grid covering the
// [-1, 1] clip space. The grid origin is the bottom-left cell.
type Tank struct {
	cells    int
	col, row int
	dir      Direction
	quad     [2]tme.Tri2
}

// NewTank places a tank in the bottom-left cell of a cells×cells grid,
// facing up.
func NewTank(cells int) *Tank {
	if cells < 1 {
		cells = 1
	}
	return &Tank{
		cells: cells,
		dir:   Up,
		quad:  tme.Quad(1/float32(cells), tme.ColorWhite),
	}
}

// Cell returns the tank's grid position.
func (t *Tank) Cell() (col, row int) { return t.col, t.row }

// Facing returns the current direction.
func (t *Tank) Facing() Direction { return t.dir }

// Triangles returns the tank quad centered on the origin.
func (t *Tank) Triangles() [2]tme.Tri2 { return t.quad }

// CellSize is the edge length of one cell in clip space.
func (t *Tank) CellSize() float32 { return 2 / float32(t.cells) }

// Origin is the movement that puts the quad in the bottom-left cell.
func (t *Tank) Origin() tme.Mat3x2 {
	half := t.CellSize() / 2
	return tme.Movement(tme.Vec2{X: half - 1, Y: half - 1})
}

// Move turns the tank toward d, or drives one cell forward when it already
// faces d. Moves that would leave the grid keep the tank in place.
func (t *Tank) Move(d Direction) Step {
	s := Step{Forward: d == t.dir}
	if s.Forward {
		dc, dr := d.step()
		col, row := t.col+dc, t.row+dr
		if col >= 0 && col < t.cells && row >= 0 && row < t.cells {
			t.col, t.row = col, row
			s.Offset = tme.Vec2{X: float32(dc), Y: float32(dr)}.Mul(t.CellSize())
		}
	} else {
		s.Turn = shortestTurn(t.dir.angle(), d.angle())
	}
	t.dir = d
	return s
}

func shortestTurn(from, to float32) float32 {
	a := math.Remainder(float64(to-from), 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return float32(a)
}
