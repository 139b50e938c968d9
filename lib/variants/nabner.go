package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

// Nabner forbids any two cells on the line, not just adjacent ones,
// from holding equal or consecutive digits.
type Nabner struct {
	Base
}

// NewNabner validates and builds a Nabner line.
func NewNabner(cells []lib.Coord) (*Nabner, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("nabner line must have at least 2 cells")
	}
	return &Nabner{Base: Base{Cells: cells, Name: fmt.Sprintf("nabner(%d)", len(cells))}}, nil
}

func (n *Nabner) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if !contains(n.Cells, cell) {
		return true
	}
	for _, cc := range n.Cells {
		if cc == cell {
			continue
		}
		ov := g.Get(cc.Row, cc.Col)
		if ov == 0 {
			continue
		}
		d := v - ov
		if d == 1 || d == -1 || d == 0 {
			return false
		}
	}
	return true
}

func (n *Nabner) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, n.Cells)
	if empties > 0 {
		return false
	}
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			d := values[i] - values[j]
			if d == 1 || d == -1 || d == 0 {
				return false
			}
		}
	}
	return true
}

func (n *Nabner) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	values, _ := assignedValues(g, n.Cells)
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] == 0 || values[j] == 0 {
				continue
			}
			d := values[i] - values[j]
			if d == 1 || d == -1 || d == 0 {
				return nil, lib.InconsistentErr(n.Tag(), "two placed digits on the nabner line are consecutive or equal")
			}
		}
	}

	out := make(map[lib.Coord]lib.DigitSet)
	for i, cell := range n.Cells {
		if values[i] != 0 {
			continue
		}
		var forbidden lib.DigitSet
		for _, ov := range values {
			if ov == 0 {
				continue
			}
			forbidden = forbidden.Add(ov)
			if ov-1 >= 1 {
				forbidden = forbidden.Add(ov - 1)
			}
			if ov+1 <= 9 {
				forbidden = forbidden.Add(ov + 1)
			}
		}
		allowed := lib.AllDigits.Minus(forbidden)
		if allowed.IsEmpty() {
			return nil, lib.NoPossibilitiesErr(cell, n.Tag(), "every digit is consecutive with, or equal to, a placed nabner digit")
		}
		out[cell] = allowed
	}
	return out, nil
}
