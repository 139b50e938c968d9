package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/utils"
)

// KillerCage enforces that its cells sum to Target and hold no
// repeated digit.
type KillerCage struct {
	Base
	Target int
}

// NewKillerCage validates and builds a KillerCage.
func NewKillerCage(cells []lib.Coord, target int) (*KillerCage, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("killer cage must have at least one cell")
	}
	if target < 1 || target > 45 {
		return nil, fmt.Errorf("killer cage target must be between 1 and 45, got %d", target)
	}
	return &KillerCage{
		Base:   Base{Cells: cells, Name: fmt.Sprintf("killer-cage(%d)", target)},
		Target: target,
	}, nil
}

func (k *KillerCage) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if !contains(k.Cells, cell) {
		return true
	}
	sum := 0
	seen := lib.DigitSet(0)
	for _, cc := range k.Cells {
		val := v
		if cc != cell {
			val = g.Get(cc.Row, cc.Col)
		}
		if val == 0 {
			continue
		}
		if seen.Has(val) {
			return false
		}
		seen = seen.Add(val)
		sum += val
	}
	return sum <= k.Target
}

func (k *KillerCage) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, k.Cells)
	if empties > 0 {
		return false
	}
	if !utils.HasUniqueNonZeros(values) {
		return false
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum == k.Target
}

func (k *KillerCage) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	values, _ := assignedValues(g, k.Cells)
	placed := lib.DigitSet(0)
	sum := 0
	for _, v := range values {
		if v != 0 {
			placed = placed.Add(v)
			sum += v
		}
	}

	empties := emptyCells(g, k.Cells)
	if len(empties) == 0 {
		return map[lib.Coord]lib.DigitSet{}, nil
	}

	remaining := k.Target - sum
	if remaining < len(empties) || remaining > 9*len(empties) {
		return nil, lib.InconsistentErr(k.Tag(), "remaining sum unreachable with remaining cells")
	}

	available := lib.AllDigits.Minus(placed).Slice()
	if len(available) < len(empties) {
		return nil, lib.InconsistentErr(k.Tag(), "not enough distinct digits left for remaining cells")
	}

	var union lib.DigitSet
	for _, combo := range utils.DigitCombinations(available, len(empties)) {
		total := 0
		for _, d := range combo {
			total += d
		}
		if total == remaining {
			union = union.Union(lib.NewDigitSet(combo...))
		}
	}

	if union.IsEmpty() {
		return nil, lib.InconsistentErr(k.Tag(), "no digit subset of the right size sums to the remaining target")
	}

	return uniformMap(empties, union), nil
}
