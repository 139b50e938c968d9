package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

// XV relates two adjacent cells whose sum must equal 10 (X) or 5 (V).
type XV struct {
	Base
	Target int
}

// NewXV validates and builds an XV marker.
func NewXV(a, b lib.Coord, target int) (*XV, error) {
	if target != 5 && target != 10 {
		return nil, fmt.Errorf("xv target must be 5 or 10, got %d", target)
	}
	return &XV{Base: Base{Cells: []lib.Coord{a, b}, Name: fmt.Sprintf("xv(%d)", target)}, Target: target}, nil
}

func (x *XV) other(cell lib.Coord) lib.Coord {
	if x.Cells[0] == cell {
		return x.Cells[1]
	}
	return x.Cells[0]
}

func (x *XV) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if cell != x.Cells[0] && cell != x.Cells[1] {
		return true
	}
	o := x.other(cell)
	ov := g.Get(o.Row, o.Col)
	if ov == 0 {
		return v < x.Target
	}
	return v+ov == x.Target
}

func (x *XV) ValidateSolution(g *lib.Grid) bool {
	a := g.Get(x.Cells[0].Row, x.Cells[0].Col)
	b := g.Get(x.Cells[1].Row, x.Cells[1].Col)
	if a == 0 || b == 0 {
		return false
	}
	return a+b == x.Target
}

func (x *XV) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	out := make(map[lib.Coord]lib.DigitSet)
	a := g.Get(x.Cells[0].Row, x.Cells[0].Col)
	b := g.Get(x.Cells[1].Row, x.Cells[1].Col)

	if a != 0 && b != 0 {
		if a+b != x.Target {
			return nil, lib.InconsistentErr(x.Tag(), fmt.Sprintf("%d and %d do not sum to %d", a, b, x.Target))
		}
		return out, nil
	}
	if a != 0 {
		need := x.Target - a
		if need < 1 || need > 9 {
			return nil, lib.NoPossibilitiesErr(x.Cells[1], x.Tag(), "complement digit out of range")
		}
		out[x.Cells[1]] = lib.Singleton(need)
	}
	if b != 0 {
		need := x.Target - b
		if need < 1 || need > 9 {
			return nil, lib.NoPossibilitiesErr(x.Cells[0], x.Tag(), "complement digit out of range")
		}
		out[x.Cells[0]] = lib.Singleton(need)
	}
	return out, nil
}
