package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestKropkiWhiteDotWithKnownDigit(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 8))

	dot, err := variants.NewKropki(lib.Coord{Row: 0, Col: 0}, lib.Coord{Row: 0, Col: 1}, false)
	require.NoError(t, err)

	cands, err := dot.Candidates(g)
	require.NoError(t, err)
	ds, ok := cands[lib.Coord{Row: 0, Col: 1}]
	require.True(t, ok)
	assert.Equal(t, lib.NewDigitSet(7, 9), ds)
}

func TestKropkiBlackDotWithKnownDigit(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 4))

	dot, err := variants.NewKropki(lib.Coord{Row: 0, Col: 0}, lib.Coord{Row: 0, Col: 1}, true)
	require.NoError(t, err)

	cands, err := dot.Candidates(g)
	require.NoError(t, err)
	ds, ok := cands[lib.Coord{Row: 0, Col: 1}]
	require.True(t, ok)
	assert.Equal(t, lib.NewDigitSet(2, 8), ds)
}

func TestKropkiLocalIsValid(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 4))

	dot, err := variants.NewKropki(lib.Coord{Row: 0, Col: 0}, lib.Coord{Row: 0, Col: 1}, true)
	require.NoError(t, err)

	assert.True(t, dot.LocalIsValid(g, 0, 1, 8))
	assert.True(t, dot.LocalIsValid(g, 0, 1, 2))
	assert.False(t, dot.LocalIsValid(g, 0, 1, 5))
}

func TestKropkiValidateSolution(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 3))
	require.NoError(t, g.Set(0, 1, 4))

	dot, err := variants.NewKropki(lib.Coord{Row: 0, Col: 0}, lib.Coord{Row: 0, Col: 1}, false)
	require.NoError(t, err)
	assert.True(t, dot.ValidateSolution(g))
}
