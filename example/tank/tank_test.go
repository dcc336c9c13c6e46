package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/tme"
)

func TestTankTurnsBeforeMoving(t *testing.T) {
	tank := NewTank(4)

	s := tank.Move(Right)
	assert.False(t, s.Forward)
	assert.Equal(t, tme.Vec2{}, s.Offset)
	assert.InDelta(t, -math.Pi/2, s.Turn, 1e-6)
	assert.Equal(t, Right, tank.Facing())
	col, row := tank.Cell()
	assert.Equal(t, [2]int{0, 0}, [2]int{col, row})

	s = tank.Move(Right)
	assert.True(t, s.Forward)
	assert.Zero(t, s.Turn)
	assert.InDelta(t, 0.5, s.Offset.X, 1e-6)
	assert.Zero(t, s.Offset.Y)
	col, row = tank.Cell()
	assert.Equal(t, [2]int{1, 0}, [2]int{col, row})
}

func TestTankStartsFacingUp(t *testing.T) {
	tank := NewTank(2)
	s := tank.Move(Up)
	require.True(t, s.Forward)
	assert.InDelta(t, 1, s.Offset.Y, 1e-6)
}

func TestTankStaysInBounds(t *testing.T) {
	tank := NewTank(3)

	for i := 0; i < 5; i++ {
		tank.Move(Up)
	}
	col, row := tank.Cell()
	assert.Equal(t, [2]int{0, 2}, [2]int{col, row})

	s := tank.Move(Up)
	assert.True(t, s.Forward, "facing the wall still counts as a forward press")
	assert.Equal(t, tme.Vec2{}, s.Offset)

	tank.Move(Left)
	s = tank.Move(Left)
	assert.Equal(t, tme.Vec2{}, s.Offset)
	col, row = tank.Cell()
	assert.Equal(t, [2]int{0, 2}, [2]int{col, row})
}

func TestTankTurnsTheShortWay(t *testing.T) {
	tank := NewTank(4)
	tank.Move(Right)

	s := tank.Move(Down)
	assert.InDelta(t, -math.Pi/2, s.Turn, 1e-6)

	s = tank.Move(Up)
	assert.InDelta(t, math.Pi, math.Abs(float64(s.Turn)), 1e-6)

	s = tank.Move(Left)
	assert.InDelta(t, math.Pi/2, s.Turn, 1e-6)
}

// The accumulated transforms place the quad center in the middle of the
// tank's cell and rotate its top edge toward the facing direction.
func TestTankTransformsMatchCell(t *testing.T) {
	tank := NewTank(4)
	rotation := tme.Identity()
	movement := tank.Origin()

	for _, d := range []Direction{Right, Right, Right, Up, Up} {
		s := tank.Move(d)
		rotation = rotation.Mul(tme.Rotation(s.Turn))
		movement = movement.Mul(tme.Movement(s.Offset))
	}

	col, row := tank.Cell()
	require.Equal(t, [2]int{2, 1}, [2]int{col, row})

	center := tme.Vec2{}.Transform(rotation).Transform(movement)
	assert.InDelta(t, 0.25, center.X, 1e-5)
	assert.InDelta(t, -0.25, center.Y, 1e-5)

	up := tme.Vec2{Y: 1}.Transform(rotation)
	assert.InDelta(t, 0, up.X, 1e-5)
	assert.InDelta(t, 1, up.Y, 1e-5)
}

func TestDirectionFor(t *testing.T) {
	d, ok := DirectionFor(tme.EventLeftPressed)
	assert.True(t, ok)
	assert.Equal(t, Left, d)

	_, ok = DirectionFor(tme.EventLeftReleased)
	assert.False(t, ok)
	_, ok = DirectionFor(tme.EventTurnOff)
	assert.False(t, ok)
}

func TestReadGrid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scale.txt")
	require.NoError(t, os.WriteFile(path, []byte("6\n"), 0o644))
	n, err := readGrid(path)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	require.NoError(t, os.WriteFile(path, []byte("0"), 0o644))
	_, err = readGrid(path)
	assert.Error(t, err)

	_, err = readGrid(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
