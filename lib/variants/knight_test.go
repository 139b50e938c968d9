package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestKnightForbidsLShapedNeighbor(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(4, 4, 5))

	k := variants.NewKnight()
	assert.False(t, k.LocalIsValid(g, 2, 3, 5))
	assert.False(t, k.LocalIsValid(g, 6, 5, 5))
	assert.True(t, k.LocalIsValid(g, 3, 3, 5)) // king move, not a knight move
}

func TestKnightCandidatesExcludeNeighborValues(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(4, 4, 5))

	k := variants.NewKnight()
	cands, err := k.Candidates(g)
	require.NoError(t, err)
	assert.False(t, cands[lib.Coord{Row: 2, Col: 3}].Has(5))
}
