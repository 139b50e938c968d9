package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/utils"
)

// Thermometer enforces strictly increasing values from the bulb
// (Cells[0]) to the tip (Cells[len-1]).
type Thermometer struct {
	Base
}

// NewThermometer validates and builds a Thermometer.
func NewThermometer(cells []lib.Coord) (*Thermometer, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("thermometer must have at least 2 cells")
	}
	if len(cells) > 9 {
		return nil, fmt.Errorf("thermometer cannot exceed 9 cells")
	}
	return &Thermometer{Base: Base{Cells: cells, Name: fmt.Sprintf("thermometer(%d)", len(cells))}}, nil
}

func (t *Thermometer) indexOf(cell lib.Coord) int {
	for i, c := range t.Cells {
		if c == cell {
			return i
		}
	}
	return -1
}

func (t *Thermometer) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	idx := t.indexOf(cell)
	if idx == -1 {
		return true
	}
	values, _ := assignedValues(g, t.Cells)
	values[idx] = v
	last := 0
	lastSet := false
	for _, val := range values {
		if val == 0 {
			continue
		}
		if lastSet && val <= last {
			return false
		}
		last = val
		lastSet = true
	}
	return true
}

func (t *Thermometer) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, t.Cells)
	if empties > 0 {
		return false
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}
	return true
}

func (t *Thermometer) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	values, _ := assignedValues(g, t.Cells)
	L := len(t.Cells)
	out := make(map[lib.Coord]lib.DigitSet, L)

	for i, cell := range t.Cells {
		if values[i] != 0 {
			continue
		}
		lower := i + 1
		upper := 9 - (L - 1 - i)

		for j := 0; j < i; j++ {
			if values[j] != 0 {
				lower = utils.Max(lower, values[j]+(i-j))
			}
		}
		for j := i + 1; j < L; j++ {
			if values[j] != 0 {
				upper = utils.Min(upper, values[j]-(j-i))
			}
		}

		if lower > upper {
			return nil, lib.NoPossibilitiesErr(cell, t.Tag(), "thermometer bounds collapsed")
		}

		var ds lib.DigitSet
		for d := lower; d <= upper; d++ {
			ds = ds.Add(d)
		}
		out[cell] = ds
	}

	return out, nil
}
