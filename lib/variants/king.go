package variants

import (
	"github.com/eftil/variant-sudoku/lib"
)

var kingOffsets = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// King forbids identical digits a king's move apart, anywhere on the
// board.
type King struct {
	Base
}

// NewKing builds a board-wide King constraint.
func NewKing() *King {
	return &King{Base: Base{Cells: allCells(), Name: "king"}}
}

func allCells() []lib.Coord {
	cells := make([]lib.Coord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cells = append(cells, lib.Coord{Row: r, Col: c})
		}
	}
	return cells
}

func inBounds(r, c int) bool { return r >= 0 && r < 9 && c >= 0 && c < 9 }

func (k *King) neighbors(r, c int) []lib.Coord {
	var out []lib.Coord
	for _, off := range kingOffsets {
		nr, nc := r+off[0], c+off[1]
		if inBounds(nr, nc) {
			out = append(out, lib.Coord{Row: nr, Col: nc})
		}
	}
	return out
}

func (k *King) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	for _, n := range k.neighbors(r, c) {
		if g.Get(n.Row, n.Col) == v {
			return false
		}
	}
	return true
}

func (k *King) ValidateSolution(g *lib.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g.Get(r, c)
			if v == 0 {
				return false
			}
			for _, n := range k.neighbors(r, c) {
				if g.Get(n.Row, n.Col) == v {
					return false
				}
			}
		}
	}
	return true
}

func (k *King) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	out := make(map[lib.Coord]lib.DigitSet)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Get(r, c) != 0 {
				continue
			}
			var forbidden lib.DigitSet
			for _, n := range k.neighbors(r, c) {
				if nv := g.Get(n.Row, n.Col); nv != 0 {
					forbidden = forbidden.Add(nv)
				}
			}
			allowed := lib.AllDigits.Minus(forbidden)
			if allowed.IsEmpty() {
				return nil, lib.NoPossibilitiesErr(lib.Coord{Row: r, Col: c}, k.Tag(), "every digit conflicts with a king neighbor")
			}
			out[lib.Coord{Row: r, Col: c}] = allowed
		}
	}
	return out, nil
}
