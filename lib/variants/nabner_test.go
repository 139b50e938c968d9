package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestNabnerLocalIsValidNonAdjacentPair(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))

	n, err := variants.NewNabner([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)

	// (0,2) is not adjacent to (0,0) in grid terms, but nabner forbids
	// consecutive values across the whole line, not just neighbors.
	assert.False(t, n.LocalIsValid(g, 0, 2, 6))
	assert.False(t, n.LocalIsValid(g, 0, 2, 4))
	assert.True(t, n.LocalIsValid(g, 0, 2, 8))
}

func TestNabnerCandidatesExcludeNeighborsOfPlaced(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))

	n, err := variants.NewNabner([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)

	cands, err := n.Candidates(g)
	require.NoError(t, err)
	ds := cands[lib.Coord{Row: 0, Col: 1}]
	assert.False(t, ds.Has(4))
	assert.False(t, ds.Has(6))
	assert.True(t, ds.Has(1))
}

func TestNabnerRejectsDuplicateDigit(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))

	n, err := variants.NewNabner([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)

	assert.False(t, n.LocalIsValid(g, 0, 2, 5))

	cands, err := n.Candidates(g)
	require.NoError(t, err)
	assert.False(t, cands[lib.Coord{Row: 0, Col: 2}].Has(5))
}

func TestNabnerValidateSolutionRejectsDuplicate(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 1))
	require.NoError(t, g.Set(0, 1, 5))
	require.NoError(t, g.Set(1, 3, 1))

	n, err := variants.NewNabner([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 3}})
	require.NoError(t, err)
	assert.False(t, n.ValidateSolution(g))
}

func TestNabnerValidateSolution(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 1))
	require.NoError(t, g.Set(0, 1, 5))
	require.NoError(t, g.Set(0, 2, 9))

	n, err := variants.NewNabner([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)
	assert.True(t, n.ValidateSolution(g))
}
