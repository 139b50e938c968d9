package variants

import (
	"github.com/eftil/variant-sudoku/lib"
)

var knightOffsets = [][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Knight forbids identical digits a knight's move apart, anywhere on
// the board.
type Knight struct {
	Base
}

// NewKnight builds a board-wide Knight constraint.
func NewKnight() *Knight {
	return &Knight{Base: Base{Cells: allCells(), Name: "knight"}}
}

func (k *Knight) neighbors(r, c int) []lib.Coord {
	var out []lib.Coord
	for _, off := range knightOffsets {
		nr, nc := r+off[0], c+off[1]
		if inBounds(nr, nc) {
			out = append(out, lib.Coord{Row: nr, Col: nc})
		}
	}
	return out
}

func (k *Knight) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	for _, n := range k.neighbors(r, c) {
		if g.Get(n.Row, n.Col) == v {
			return false
		}
	}
	return true
}

func (k *Knight) ValidateSolution(g *lib.Grid) bool {
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

func (k *Knight) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
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
				return nil, lib.NoPossibilitiesErr(lib.Coord{Row: r, Col: c}, k.Tag(), "every digit conflicts with a knight neighbor")
			}
			out[lib.Coord{Row: r, Col: c}] = allowed
		}
	}
	return out, nil
}
