package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/utils"
)

// Renban enforces that its cells hold a consecutive run of distinct
// digits, in any order.
type Renban struct {
	Base
}

// NewRenban validates and builds a Renban line.
func NewRenban(cells []lib.Coord) (*Renban, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("renban line must have at least 2 cells")
	}
	if len(cells) > 9 {
		return nil, fmt.Errorf("renban line cannot exceed 9 cells")
	}
	return &Renban{Base: Base{Cells: cells, Name: fmt.Sprintf("renban(%d)", len(cells))}}, nil
}

func (rb *Renban) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if !contains(rb.Cells, cell) {
		return true
	}
	values, _ := assignedValues(g, rb.Cells)
	for i, cc := range rb.Cells {
		if cc == cell {
			values[i] = v
		}
	}
	return rb.windowOK(values)
}

func (rb *Renban) windowOK(values []int) bool {
	seen := lib.DigitSet(0)
	min, max := 10, 0
	for _, v := range values {
		if v == 0 {
			continue
		}
		if seen.Has(v) {
			return false
		}
		seen = seen.Add(v)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return true
	}
	return max-min <= len(values)-1
}

func (rb *Renban) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, rb.Cells)
	if empties > 0 {
		return false
	}
	if !utils.HasUniqueNonZeros(values) {
		return false
	}
	min, max := 10, 0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return max-min == len(values)-1
}

func (rb *Renban) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	values, _ := assignedValues(g, rb.Cells)
	if !utils.HasUniqueNonZeros(values) {
		return nil, lib.InconsistentErr(rb.Tag(), "duplicate digit already placed on renban line")
	}

	L := len(rb.Cells)
	var union lib.DigitSet
	for start := 1; start+L-1 <= 9; start++ {
		windowOK := true
		for _, v := range values {
			if v != 0 && (v < start || v > start+L-1) {
				windowOK = false
				break
			}
		}
		if !windowOK {
			continue
		}
		for d := start; d <= start+L-1; d++ {
			union = union.Add(d)
		}
	}

	if union.IsEmpty() {
		return nil, lib.InconsistentErr(rb.Tag(), "no consecutive window fits the placed digits")
	}

	placed := lib.NewDigitSet(values...)
	out := make(map[lib.Coord]lib.DigitSet, len(rb.Cells))
	for _, cell := range emptyCells(g, rb.Cells) {
		out[cell] = union.Minus(placed)
	}
	return out, nil
}
