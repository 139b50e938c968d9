package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

var entropicBands = [3]lib.DigitSet{
	lib.NewDigitSet(1, 2, 3),
	lib.NewDigitSet(4, 5, 6),
	lib.NewDigitSet(7, 8, 9),
}

func bandOf(v int) int {
	switch {
	case v >= 1 && v <= 3:
		return 0
	case v >= 4 && v <= 6:
		return 1
	case v >= 7 && v <= 9:
		return 2
	}
	return -1
}

// Entropic enforces that every 3 consecutive cells cover the bands
// {1-3},{4-6},{7-9} exactly once. Equivalently, index i mod 3 maps
// to a fixed band for the whole line.
type Entropic struct {
	Base
}

// NewEntropic validates and builds an Entropic line.
func NewEntropic(cells []lib.Coord) (*Entropic, error) {
	if len(cells) < 3 {
		return nil, fmt.Errorf("entropic line must have at least 3 cells")
	}
	return &Entropic{Base: Base{Cells: cells, Name: fmt.Sprintf("entropic(%d)", len(cells))}}, nil
}

// residueBands returns, for each residue class 0,1,2, the band it has
// been pinned to by an assigned cell, or -1 if undetermined. An error
// is returned if two assigned cells of the same residue disagree.
func (e *Entropic) residueBands(g *lib.Grid) ([3]int, error) {
	residueBand := [3]int{-1, -1, -1}
	for i, cell := range e.Cells {
		v := g.Get(cell.Row, cell.Col)
		if v == 0 {
			continue
		}
		residue := i % 3
		band := bandOf(v)
		if residueBand[residue] == -1 {
			residueBand[residue] = band
		} else if residueBand[residue] != band {
			return residueBand, lib.InconsistentErr(e.Tag(), "entropic residue class maps to two different bands")
		}
	}
	return residueBand, nil
}

func (e *Entropic) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	idx := -1
	for i, cc := range e.Cells {
		if cc == cell {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}
	residueBand, err := e.residueBands(g)
	if err != nil {
		return false
	}
	residue := idx % 3
	want := residueBand[residue]
	if want == -1 {
		return true
	}
	return bandOf(v) == want
}

func (e *Entropic) ValidateSolution(g *lib.Grid) bool {
	values, empties := assignedValues(g, e.Cells)
	if empties > 0 {
		return false
	}
	residueBand := [3]int{-1, -1, -1}
	for i, v := range values {
		residue := i % 3
		band := bandOf(v)
		if residueBand[residue] == -1 {
			residueBand[residue] = band
		} else if residueBand[residue] != band {
			return false
		}
	}
	return residueBand[0] != residueBand[1] && residueBand[1] != residueBand[2] && residueBand[0] != residueBand[2]
}

func (e *Entropic) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	residueBand, err := e.residueBands(g)
	if err != nil {
		return nil, err
	}

	used := map[int]bool{}
	for _, b := range residueBand {
		if b != -1 {
			used[b] = true
		}
	}
	var remaining lib.DigitSet
	for b := 0; b < 3; b++ {
		if !used[b] {
			remaining = remaining.Union(entropicBands[b])
		}
	}

	out := make(map[lib.Coord]lib.DigitSet)
	for i, cell := range e.Cells {
		if g.Get(cell.Row, cell.Col) != 0 {
			continue
		}
		residue := i % 3
		var ds lib.DigitSet
		if residueBand[residue] != -1 {
			ds = entropicBands[residueBand[residue]]
		} else {
			ds = remaining
		}
		if ds.IsEmpty() {
			return nil, lib.NoPossibilitiesErr(cell, e.Tag(), "no band left for this residue class")
		}
		out[cell] = ds
	}
	return out, nil
}
