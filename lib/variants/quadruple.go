package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

// Quadruple marks the four cells around an intersection. A normal
// quadruple requires every listed digit to appear (with multiplicity)
// among those four cells; an anti-quadruple forbids every listed
// digit from appearing at all.
type Quadruple struct {
	Base
	Digits []int
	Anti   bool
}

// NewQuadruple validates and builds a Quadruple marker.
func NewQuadruple(cells []lib.Coord, digits []int, anti bool) (*Quadruple, error) {
	if len(cells) != 4 {
		return nil, fmt.Errorf("quadruple must mark exactly 4 cells, got %d", len(cells))
	}
	if !anti && len(digits) > 4 {
		return nil, fmt.Errorf("a normal quadruple cannot require more than 4 digits")
	}
	for _, d := range digits {
		if d < 1 || d > 9 {
			return nil, fmt.Errorf("quadruple digit %d out of range", d)
		}
	}
	name := "quadruple"
	if anti {
		name = "anti-quadruple"
	}
	return &Quadruple{Base: Base{Cells: cells, Name: name}, Digits: digits, Anti: anti}, nil
}

func requiredCounts(digits []int) map[int]int {
	counts := make(map[int]int)
	for _, d := range digits {
		counts[d]++
	}
	return counts
}

func (q *Quadruple) placedCounts(g *lib.Grid) map[int]int {
	counts := make(map[int]int)
	for _, cell := range q.Cells {
		v := g.Get(cell.Row, cell.Col)
		if v != 0 {
			counts[v]++
		}
	}
	return counts
}

func (q *Quadruple) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if !contains(q.Cells, cell) {
		return true
	}
	if q.Anti {
		for _, d := range q.Digits {
			if d == v {
				return false
			}
		}
		return true
	}

	placed := q.placedCounts(g)
	placed[v]++
	required := requiredCounts(q.Digits)

	missing := 0
	for d, need := range required {
		have := placed[d]
		if have < need {
			missing += need - have
		}
	}
	_, empties := assignedValues(g, q.Cells)
	// v is hypothetical, one fewer empty slot remains after it.
	return missing <= empties-1
}

func (q *Quadruple) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, q.Cells)
	if empties > 0 {
		return false
	}
	if q.Anti {
		forbidden := lib.NewDigitSet(q.Digits...)
		for _, v := range values {
			if forbidden.Has(v) {
				return false
			}
		}
		return true
	}
	placed := q.placedCounts(g)
	for d, need := range requiredCounts(q.Digits) {
		if placed[d] < need {
			return false
		}
	}
	return true
}

func (q *Quadruple) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	out := make(map[lib.Coord]lib.DigitSet)
	empties := emptyCells(g, q.Cells)

	if q.Anti {
		forbidden := lib.NewDigitSet(q.Digits...)
		allowed := lib.AllDigits.Minus(forbidden)
		if allowed.IsEmpty() {
			return nil, lib.InconsistentErr(q.Tag(), "anti-quadruple forbids every digit")
		}
		for _, cell := range empties {
			out[cell] = allowed
		}
		return out, nil
	}

	placed := q.placedCounts(g)
	required := requiredCounts(q.Digits)
	missingSet := lib.DigitSet(0)
	missingCount := 0
	for d, need := range required {
		have := placed[d]
		if have < need {
			missingSet = missingSet.Add(d)
			missingCount += need - have
		}
	}

	if missingCount > len(empties) {
		return nil, lib.InconsistentErr(q.Tag(), "not enough empty cells left to satisfy the quadruple")
	}
	if missingCount == 0 || missingCount < len(empties) {
		// Either fully satisfied already, or there is slack: any
		// digit still works in the remaining cells as far as this
		// marker alone is concerned.
		return out, nil
	}
	// missingCount == len(empties): every remaining cell must take one
	// of the still-missing digits.
	for _, cell := range empties {
		out[cell] = missingSet
	}
	return out, nil
}
