package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestThermometerCandidatesNarrowByPosition(t *testing.T) {
	g := lib.NewGrid()
	therm, err := variants.NewThermometer([]lib.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
	})
	require.NoError(t, err)

	cands, err := therm.Candidates(g)
	require.NoError(t, err)
	// bulb: index 0 of 4 -> lower=1, upper=9-3=6
	assert.Equal(t, lib.NewDigitSet(1, 2, 3, 4, 5, 6), cands[lib.Coord{Row: 0, Col: 0}])
	// tip: index 3 of 4 -> lower=4, upper=9
	assert.Equal(t, lib.NewDigitSet(4, 5, 6, 7, 8, 9), cands[lib.Coord{Row: 0, Col: 3}])
}

func TestThermometerLocalIsValidMonotonic(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 3))
	therm, err := variants.NewThermometer([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)

	assert.True(t, therm.LocalIsValid(g, 0, 1, 5))
	assert.False(t, therm.LocalIsValid(g, 0, 1, 3))
	assert.False(t, therm.LocalIsValid(g, 0, 1, 2))
}

func TestThermometerKnownNeighborsTightenBounds(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 2))
	require.NoError(t, g.Set(0, 2, 6))
	therm, err := variants.NewThermometer([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)

	cands, err := therm.Candidates(g)
	require.NoError(t, err)
	assert.Equal(t, lib.NewDigitSet(3, 4, 5), cands[lib.Coord{Row: 0, Col: 1}])
}
