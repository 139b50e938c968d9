package variants

import (
	"github.com/eftil/variant-sudoku/lib"
)

// Shaded marks a single cell as required to hold an odd digit (circle)
// or an even digit (square).
type Shaded struct {
	Base
	Odd bool
}

var (
	oddDigits  = lib.NewDigitSet(1, 3, 5, 7, 9)
	evenDigits = lib.NewDigitSet(2, 4, 6, 8)
)

// NewShaded builds a Shaded marker; it performs no validation.
func NewShaded(cell lib.Coord, odd bool) *Shaded {
	name := "shaded-even"
	if odd {
		name = "shaded-odd"
	}
	return &Shaded{Base: Base{Cells: []lib.Coord{cell}, Name: name}, Odd: odd}
}

func (s *Shaded) allowed() lib.DigitSet {
	if s.Odd {
		return oddDigits
	}
	return evenDigits
}

func (s *Shaded) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if cell != s.Cells[0] {
		return true
	}
	return s.allowed().Has(v)
}

func (s *Shaded) ValidateSolution(g *lib.Grid) bool {
	v := g.Get(s.Cells[0].Row, s.Cells[0].Col)
	return v != 0 && s.allowed().Has(v)
}

func (s *Shaded) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	if g.Get(s.Cells[0].Row, s.Cells[0].Col) != 0 {
		return map[lib.Coord]lib.DigitSet{}, nil
	}
	return map[lib.Coord]lib.DigitSet{s.Cells[0]: s.allowed()}, nil
}
