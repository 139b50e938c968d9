package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestRenbanCandidatesWithOneKnownDigit(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))

	rb, err := variants.NewRenban([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)

	cands, err := rb.Candidates(g)
	require.NoError(t, err)
	// Windows containing 5 of width 3: {3,4,5},{4,5,6},{5,6,7}; union minus {5}.
	assert.Equal(t, lib.NewDigitSet(3, 4, 6, 7), cands[lib.Coord{Row: 0, Col: 1}])
}

func TestRenbanValidateSolution(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 4))
	require.NoError(t, g.Set(0, 1, 6))
	require.NoError(t, g.Set(0, 2, 5))

	rb, err := variants.NewRenban([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	require.NoError(t, err)
	assert.True(t, rb.ValidateSolution(g))
}

func TestRenbanRejectsDuplicate(t *testing.T) {
	g := lib.NewGrid()
	rb, err := variants.NewRenban([]lib.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)
	assert.False(t, rb.LocalIsValid(mustSetCell(t, g, 0, 0, 5), 0, 1, 5))
}

func mustSetCell(t *testing.T, g *lib.Grid, r, c, v int) *lib.Grid {
	t.Helper()
	require.NoError(t, g.Set(r, c, v))
	return g
}
