package variants

import (
	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/utils"
)

// Diagonal enforces that one of the board's two main diagonals holds
// each digit 1-9 exactly once.
type Diagonal struct {
	Base
}

// NewMainDiagonal builds the top-left to bottom-right diagonal.
func NewMainDiagonal() *Diagonal {
	cells := make([]lib.Coord, 9)
	for i := 0; i < 9; i++ {
		cells[i] = lib.Coord{Row: i, Col: i}
	}
	return &Diagonal{Base: Base{Cells: cells, Name: "diagonal(main)"}}
}

// NewAntiDiagonal builds the top-right to bottom-left diagonal.
func NewAntiDiagonal() *Diagonal {
	cells := make([]lib.Coord, 9)
	for i := 0; i < 9; i++ {
		cells[i] = lib.Coord{Row: i, Col: 8 - i}
	}
	return &Diagonal{Base: Base{Cells: cells, Name: "diagonal(anti)"}}
}

func (d *Diagonal) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if !contains(d.Cells, cell) {
		return true
	}
	for _, cc := range d.Cells {
		if cc == cell {
			continue
		}
		if g.Get(cc.Row, cc.Col) == v {
			return false
		}
	}
	return true
}

func (d *Diagonal) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, d.Cells)
	if empties > 0 {
		return false
	}
	return utils.HasUniqueNonZeros(values)
}

func (d *Diagonal) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	values, _ := assignedValues(g, d.Cells)
	if !utils.HasUniqueNonZeros(values) {
		return nil, lib.InconsistentErr(d.Tag(), "duplicate digit already placed on the diagonal")
	}
	placed := lib.NewDigitSet(values...)
	remaining := lib.AllDigits.Minus(placed)
	if remaining.IsEmpty() && len(emptyCells(g, d.Cells)) > 0 {
		return nil, lib.InconsistentErr(d.Tag(), "diagonal has no digits left for its empty cells")
	}
	return uniformMap(emptyCells(g, d.Cells), remaining), nil
}
