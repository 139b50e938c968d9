package lib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eftil/variant-sudoku/lib"
)

func TestDigitSetAddHasRemove(t *testing.T) {
	var s lib.DigitSet
	assert.True(t, s.IsEmpty())

	s = s.Add(3).Add(7)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(4))
	assert.Equal(t, 2, s.Count())

	s = s.Remove(3)
	assert.False(t, s.Has(3))
	assert.Equal(t, 1, s.Count())
}

func TestDigitSetOutOfRangeIgnored(t *testing.T) {
	var s lib.DigitSet
	s = s.Add(0).Add(10).Add(-1)
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Has(0))
	assert.False(t, s.Has(10))
}

func TestDigitSetUnionIntersectMinus(t *testing.T) {
	a := lib.NewDigitSet(1, 2, 3)
	b := lib.NewDigitSet(2, 3, 4)

	assert.Equal(t, lib.NewDigitSet(1, 2, 3, 4), a.Union(b))
	assert.Equal(t, lib.NewDigitSet(2, 3), a.Intersect(b))
	assert.Equal(t, lib.NewDigitSet(1), a.Minus(b))
}

func TestDigitSetSliceAndSingle(t *testing.T) {
	s := lib.NewDigitSet(5, 2, 8)
	assert.Equal(t, []int{2, 5, 8}, s.Slice())

	_, ok := s.Single()
	assert.False(t, ok)

	single := lib.Singleton(6)
	d, ok := single.Single()
	assert.True(t, ok)
	assert.Equal(t, 6, d)
}

func TestAllDigits(t *testing.T) {
	assert.Equal(t, 9, lib.AllDigits.Count())
	for d := 1; d <= 9; d++ {
		assert.True(t, lib.AllDigits.Has(d))
	}
}
