package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestMainDiagonalCandidatesExcludePlaced(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 4))

	d := variants.NewMainDiagonal()
	cands, err := d.Candidates(g)
	require.NoError(t, err)
	assert.False(t, cands[lib.Coord{Row: 1, Col: 1}].Has(4))
}

func TestAntiDiagonalCells(t *testing.T) {
	d := variants.NewAntiDiagonal()
	cells := d.ConstrainedCells()
	require.Len(t, cells, 9)
	assert.Equal(t, lib.Coord{Row: 0, Col: 8}, cells[0])
	assert.Equal(t, lib.Coord{Row: 8, Col: 0}, cells[8])
}

func TestDiagonalRejectsDuplicate(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 4))

	d := variants.NewMainDiagonal()
	assert.False(t, d.LocalIsValid(g, 1, 1, 4))
	assert.True(t, d.LocalIsValid(g, 1, 1, 5))
}
