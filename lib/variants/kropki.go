package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

// Kropki relates exactly two adjacent cells: white dots mean
// consecutive digits, black dots mean one digit is double the other.
type Kropki struct {
	Base
	Black bool
}

// NewKropki builds a Kropki dot between two cells. It performs no
// validation (adjacency is not checked) and always returns a nil error.
func NewKropki(a, b lib.Coord, black bool) (*Kropki, error) {
	name := "kropki-white"
	if black {
		name = "kropki-black"
	}
	return &Kropki{Base: Base{Cells: []lib.Coord{a, b}, Name: name}, Black: black}, nil
}

func (k *Kropki) related(a, b int) bool {
	if a == 0 || b == 0 {
		return true
	}
	if k.Black {
		return a == 2*b || b == 2*a
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d == 1
}

func (k *Kropki) other(cell lib.Coord) lib.Coord {
	if k.Cells[0] == cell {
		return k.Cells[1]
	}
	return k.Cells[0]
}

func (k *Kropki) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	if cell != k.Cells[0] && cell != k.Cells[1] {
		return true
	}
	o := k.other(cell)
	ov := g.Get(o.Row, o.Col)
	return k.related(v, ov)
}

func (k *Kropki) ValidateSolution(g *lib.Grid) bool {
	a := g.Get(k.Cells[0].Row, k.Cells[0].Col)
	b := g.Get(k.Cells[1].Row, k.Cells[1].Col)
	if a == 0 || b == 0 {
		return false
	}
	return k.related(a, b)
}

func (k *Kropki) relatedDigits(v int) lib.DigitSet {
	var ds lib.DigitSet
	for d := 1; d <= 9; d++ {
		if k.related(v, d) && d != 0 {
			ds = ds.Add(d)
		}
	}
	return ds
}

func (k *Kropki) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	out := make(map[lib.Coord]lib.DigitSet)
	a := g.Get(k.Cells[0].Row, k.Cells[0].Col)
	b := g.Get(k.Cells[1].Row, k.Cells[1].Col)

	if a != 0 && b != 0 {
		if !k.related(a, b) {
			return nil, lib.InconsistentErr(k.Tag(), fmt.Sprintf("%d and %d are not kropki-related", a, b))
		}
		return out, nil
	}
	if a != 0 {
		ds := k.relatedDigits(a)
		if ds.IsEmpty() {
			return nil, lib.NoPossibilitiesErr(k.Cells[1], k.Tag(), "no digit is kropki-related to the known cell")
		}
		out[k.Cells[1]] = ds
	}
	if b != 0 {
		ds := k.relatedDigits(b)
		if ds.IsEmpty() {
			return nil, lib.NoPossibilitiesErr(k.Cells[0], k.Tag(), "no digit is kropki-related to the known cell")
		}
		out[k.Cells[0]] = ds
	}
	return out, nil
}
