package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestArrowLocalIsValid(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 1, 3))
	require.NoError(t, g.Set(0, 2, 4))

	arrow, err := variants.NewArrow([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)

	assert.True(t, arrow.LocalIsValid(g, 0, 0, 7))
	assert.False(t, arrow.LocalIsValid(g, 0, 0, 8))
}

func TestArrowValidateSolution(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 7))
	require.NoError(t, g.Set(0, 1, 3))
	require.NoError(t, g.Set(0, 2, 4))

	arrow, err := variants.NewArrow([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)
	assert.True(t, arrow.ValidateSolution(g))
}

func TestArrowCandidatesWithKnownHead(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(1, 0, 9))

	arrow, err := variants.NewArrow([]lib.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}})
	require.NoError(t, err)

	cands, err := arrow.Candidates(g)
	require.NoError(t, err)
	// Shaft must sum to 9 across two cells; every digit from 1..8 can
	// appear in at least one valid pairing summing to 9.
	for _, cell := range []lib.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}} {
		ds, ok := cands[cell]
		require.True(t, ok)
		assert.False(t, ds.Has(9))
	}
}

func TestArrowRejectsTooFewCells(t *testing.T) {
	_, err := variants.NewArrow([]lib.Coord{{Row: 0, Col: 0}})
	assert.Error(t, err)
}
