package main

import (
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/tme"
)

func TestDefaultGeometry(t *testing.T) {
	m, err := readMorph(strings.NewReader(defaultGeometry))
	require.NoError(t, err)
	assert.Zero(t, m.start)

	assert.Equal(t, m.from, m.at(0))
	assert.Equal(t, m.to, m.at(1))
}

func TestMorphStartsPartWay(t *testing.T) {
	src := `0 0 0 0 0 0
0 0 0 0 0 0
2 2 2 2 2 2
2 2 2 2 2 2
0.5`
	m, err := readMorph(strings.NewReader(src))
	require.NoError(t, err)

	half := m.at(0)
	assert.Equal(t, tme.Vec2{X: 1, Y: 1}, half[0].V[2].Pos)
	quarter := m.at(0.5)
	assert.InDelta(t, 1.5, quarter[1].V[0].Pos.X, 1e-6)
}

func TestMorphErrors(t *testing.T) {
	_, err := readMorph(strings.NewReader("0 0 0 0 0 0"))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	four := strings.Repeat("0 0 0 0 0 0\n", 4)
	_, err = readMorph(strings.NewReader(four))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blend factor")

	_, err = readMorph(strings.NewReader(four + "1.5"))
	assert.Error(t, err)
}
