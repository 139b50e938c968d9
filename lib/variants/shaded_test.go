package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func TestShadedOddCircle(t *testing.T) {
	g := lib.NewGrid()
	s := variants.NewShaded(lib.Coord{Row: 0, Col: 0}, true)

	assert.True(t, s.LocalIsValid(g, 0, 0, 3))
	assert.False(t, s.LocalIsValid(g, 0, 0, 4))

	cands, err := s.Candidates(g)
	assert.NoError(t, err)
	assert.Equal(t, lib.NewDigitSet(1, 3, 5, 7, 9), cands[lib.Coord{Row: 0, Col: 0}])
}

func TestShadedEvenSquare(t *testing.T) {
	g := lib.NewGrid()
	s := variants.NewShaded(lib.Coord{Row: 0, Col: 0}, false)

	assert.True(t, s.LocalIsValid(g, 0, 0, 4))
	assert.False(t, s.LocalIsValid(g, 0, 0, 3))
}
