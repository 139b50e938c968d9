package lib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
)

func TestNewGridStartsEmpty(t *testing.T) {
	g := lib.NewGrid()
	assert.False(t, g.IsFullyAssigned())
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.Equal(t, 0, g.Get(r, c))
		}
	}
}

func TestSetEliminatesPeers(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))

	assert.False(t, g.Candidates(0, 1).Has(5))
	assert.False(t, g.Candidates(1, 0).Has(5))
	assert.False(t, g.Candidates(1, 1).Has(5))
	assert.True(t, g.Candidates(8, 8).Has(5))
}

func TestSetClearDoesNotRestoreCandidates(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))
	require.NoError(t, g.Set(0, 0, 0))

	assert.Equal(t, 0, g.Get(0, 0))
	assert.False(t, g.Candidates(0, 1).Has(5))
}

func TestIsMoveLocallyValidClassicRules(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))

	assert.False(t, g.IsMoveLocallyValid(0, 1, 5))
	assert.False(t, g.IsMoveLocallyValid(1, 0, 5))
	assert.False(t, g.IsMoveLocallyValid(1, 1, 5))
	assert.True(t, g.IsMoveLocallyValid(1, 1, 6))
	assert.True(t, g.IsMoveLocallyValid(8, 8, 5))
}

func TestIsBoardValidRequiresFullAssignment(t *testing.T) {
	g := lib.NewGrid()
	assert.False(t, g.IsBoardValid())
}

func TestSetOutOfRangeIsInputError(t *testing.T) {
	g := lib.NewGrid()
	assert.Error(t, g.Set(9, 0, 1))
	assert.Error(t, g.Set(0, 0, 10))
}

func TestGridStringRendersGivens(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 7))
	s := g.String()
	assert.Equal(t, byte('7'), s[0])
	assert.Equal(t, byte('.'), s[1])
}
