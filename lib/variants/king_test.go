package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestKingForbidsDiagonalNeighbor(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(4, 4, 5))

	k := variants.NewKing()
	assert.False(t, k.LocalIsValid(g, 3, 3, 5))
	assert.False(t, k.LocalIsValid(g, 5, 5, 5))
	assert.True(t, k.LocalIsValid(g, 3, 3, 6))
	assert.True(t, k.LocalIsValid(g, 2, 2, 5)) // too far to be a king move
}

func TestKingCandidatesExcludeNeighborValues(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(4, 4, 5))

	k := variants.NewKing()
	cands, err := k.Candidates(g)
	require.NoError(t, err)
	assert.False(t, cands[lib.Coord{Row: 3, Col: 4}].Has(5))
	assert.True(t, cands[lib.Coord{Row: 0, Col: 0}].Has(5))
}
