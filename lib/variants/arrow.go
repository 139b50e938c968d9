package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

// Arrow enforces that the shaft digits sum to the head digit. Shaft
// digits may repeat (spec.md §9 open question, resolved in favour of
// repetition-allowed); classic row/column/box rules apply as usual.
type Arrow struct {
	Base // Cells[0] is the head, Cells[1:] is the shaft
}

// NewArrow validates and builds an Arrow.
func NewArrow(cells []lib.Coord) (*Arrow, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("arrow must have a head and at least one shaft cell")
	}
	return &Arrow{Base: Base{Cells: cells, Name: fmt.Sprintf("arrow(%d)", len(cells))}}, nil
}

func (a *Arrow) head() lib.Coord   { return a.Cells[0] }
func (a *Arrow) shaft() []lib.Coord { return a.Cells[1:] }

func (a *Arrow) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	headVal := g.Get(a.head().Row, a.head().Col)
	if cell == a.head() {
		headVal = v
	}

	shaftSum := 0
	shaftKnown := true
	for _, s := range a.shaft() {
		val := g.Get(s.Row, s.Col)
		if s == cell {
			val = v
		}
		if val == 0 {
			shaftKnown = false
			continue
		}
		shaftSum += val
	}

	if headVal != 0 && shaftSum > headVal {
		return false
	}
	if headVal != 0 && shaftKnown && shaftSum != headVal {
		return false
	}
	return true
}

func (a *Arrow) ValidateSolution(g *lib.Grid) bool {
	headVal := g.Get(a.head().Row, a.head().Col)
	if headVal == 0 {
		return false
	}
	sum := 0
	for _, s := range a.shaft() {
		val := g.Get(s.Row, s.Col)
		if val == 0 {
			return false
		}
		sum += val
	}
	return sum == headVal
}

// enumerateShaft recursively fills in unknown shaft positions with
// digits 1..9 (repetition allowed) and calls visit with the completed
// assignment and its sum.
func enumerateShaft(known []int, idx int, visit func(assignment []int, sum int)) {
	var rec func(i, sum int)
	rec = func(i, sum int) {
		if i == len(known) {
			visit(append([]int(nil), known...), sum)
			return
		}
		if known[i] != 0 {
			rec(i+1, sum+known[i])
			return
		}
		for d := 1; d <= 9; d++ {
			known[i] = d
			rec(i+1, sum+d)
		}
		known[i] = 0
	}
	rec(0, 0)
}

func (a *Arrow) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	headVal := g.Get(a.head().Row, a.head().Col)
	shaft := a.shaft()
	known := make([]int, len(shaft))
	for i, s := range shaft {
		known[i] = g.Get(s.Row, s.Col)
	}

	out := make(map[lib.Coord]lib.DigitSet)
	shaftUnions := make([]lib.DigitSet, len(shaft))
	var headCandidates lib.DigitSet
	any := false

	visit := func(assignment []int, sum int) {
		if headVal != 0 {
			if sum != headVal {
				return
			}
		} else if sum < 1 || sum > 9 {
			return
		}
		any = true
		if headVal == 0 {
			headCandidates = headCandidates.Add(sum)
		}
		for i, d := range assignment {
			shaftUnions[i] = shaftUnions[i].Add(d)
		}
	}

	enumerateShaft(known, 0, visit)

	if !any {
		return nil, lib.InconsistentErr(a.Tag(), "no shaft assignment satisfies the arrow")
	}

	if headVal == 0 {
		if headCandidates.IsEmpty() {
			return nil, lib.NoPossibilitiesErr(a.head(), a.Tag(), "no achievable shaft sum for head")
		}
		out[a.head()] = headCandidates
	}
	for i, s := range shaft {
		if known[i] != 0 {
			continue
		}
		if shaftUnions[i].IsEmpty() {
			return nil, lib.NoPossibilitiesErr(s, a.Tag(), "no digit works at this shaft position")
		}
		out[s] = shaftUnions[i]
	}
	return out, nil
}
