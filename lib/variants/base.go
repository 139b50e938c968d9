// Package variants implements the variant kinds of spec.md §3/§4.2:
// Killer cages, Thermometers, Renban lines, German Whispers, Entropic
// lines, Arrows, Region-Sum lines, Diagonals, Kropki/XV dots,
// Quadruple circles, Shaded cells, King/Knight moves and Nabner
// lines. Each type embeds Base for the cell list and implements
// lib.Variant.
package variants

import "github.com/eftil/variant-sudoku/lib"

// Base holds the cell list and display name shared by most variants.
type Base struct {
	Cells []lib.Coord
	Name  string
}

// ConstrainedCells returns the cell list.
func (b Base) ConstrainedCells() []lib.Coord {
	return b.Cells
}

// Tag returns the variant's diagnostic label.
func (b Base) Tag() string {
	return b.Name
}

// assignedValues returns the grid values at cells, in cell order, and
// the count of empty cells among them.
func assignedValues(g *lib.Grid, cells []lib.Coord) (values []int, empties int) {
	values = make([]int, len(cells))
	for i, cell := range cells {
		values[i] = g.Get(cell.Row, cell.Col)
		if values[i] == 0 {
			empties++
		}
	}
	return values, empties
}

// emptyCells returns the subset of cells currently unassigned.
func emptyCells(g *lib.Grid, cells []lib.Coord) []lib.Coord {
	out := make([]lib.Coord, 0, len(cells))
	for _, cell := range cells {
		if g.Get(cell.Row, cell.Col) == 0 {
			out = append(out, cell)
		}
	}
	return out
}

// contains reports whether needle is in haystack.
func contains(haystack []lib.Coord, needle lib.Coord) bool {
	for _, c := range haystack {
		if c == needle {
			return true
		}
	}
	return false
}

// uniformMap returns a candidate map giving every cell the full set
// ds; a convenience for variants whose Candidates degrade to "no
// further narrowing possible".
func uniformMap(cells []lib.Coord, ds lib.DigitSet) map[lib.Coord]lib.DigitSet {
	out := make(map[lib.Coord]lib.DigitSet, len(cells))
	for _, cell := range cells {
		out[cell] = ds
	}
	return out
}
