package variants

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib"
)

// RegionSum enforces that every segment of the line lying inside a
// single box sums to the same total. Segments are formed by grouping
// consecutive cells (in line order) that share a box.
type RegionSum struct {
	Base
}

// NewRegionSum validates and builds a Region-Sum line.
func NewRegionSum(cells []lib.Coord) (*RegionSum, error) {
	if len(cells) < 2 {
		return nil, fmt.Errorf("region-sum line must have at least 2 cells")
	}
	return &RegionSum{Base: Base{Cells: cells, Name: fmt.Sprintf("region-sum(%d)", len(cells))}}, nil
}

// segments groups the line's cell indices into runs sharing a box.
func (rs *RegionSum) segments() [][]int {
	var segs [][]int
	var cur []int
	curBox := -1
	for i, cell := range rs.Cells {
		b := cell.Box()
		if i == 0 || b != curBox {
			if len(cur) > 0 {
				segs = append(segs, cur)
			}
			cur = []int{i}
			curBox = b
		} else {
			cur = append(cur, i)
		}
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

func (rs *RegionSum) segmentBounds(g *lib.Grid, seg []int) (sum, empties, lo, hi int) {
	for _, i := range seg {
		cell := rs.Cells[i]
		v := g.Get(cell.Row, cell.Col)
		if v == 0 {
			empties++
		} else {
			sum += v
		}
	}
	lo = sum + empties*1
	hi = sum + empties*9
	return
}

func (rs *RegionSum) LocalIsValid(g *lib.Grid, r, c, v int) bool {
	cell := lib.Coord{Row: r, Col: c}
	idx := -1
	for i, cc := range rs.Cells {
		if cc == cell {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}

	segs := rs.segments()
	// All fully-known segments must agree; bound ranges of unknown
	// segments must overlap the known total if one exists.
	knownTotal := -1
	for _, seg := range segs {
		sum, empties, _, _ := rs.segmentBoundsWithOverride(g, seg, idx, v)
		if empties == 0 {
			if knownTotal == -1 {
				knownTotal = sum
			} else if knownTotal != sum {
				return false
			}
		}
	}
	if knownTotal != -1 {
		for _, seg := range segs {
			_, empties, lo, hi := rs.segmentBoundsWithOverride(g, seg, idx, v)
			if empties > 0 && (knownTotal < lo || knownTotal > hi) {
				return false
			}
		}
	}
	return true
}

func (rs *RegionSum) segmentBoundsWithOverride(g *lib.Grid, seg []int, overrideIdx, overrideVal int) (sum, empties, lo, hi int) {
	for _, i := range seg {
		cell := rs.Cells[i]
		v := g.Get(cell.Row, cell.Col)
		if i == overrideIdx {
			v = overrideVal
		}
		if v == 0 {
			empties++
		} else {
			sum += v
		}
	}
	lo = sum + empties*1
	hi = sum + empties*9
	return
}

func (rs *RegionSum) ValidateSolution(g *lib.Grid) bool {
	segs := rs.segments()
	total := -1
	for _, seg := range segs {
		sum, empties, _, _ := rs.segmentBounds(g, seg)
		if empties > 0 {
			return false
		}
		if total == -1 {
			total = sum
		} else if total != sum {
			return false
		}
	}
	return true
}

func (rs *RegionSum) Candidates(g *lib.Grid) (map[lib.Coord]lib.DigitSet, error) {
	segs := rs.segments()

	knownTotal := -1
	for _, seg := range segs {
		sum, empties, _, _ := rs.segmentBounds(g, seg)
		if empties == 0 {
			if knownTotal == -1 {
				knownTotal = sum
			} else if knownTotal != sum {
				return nil, lib.InconsistentErr(rs.Tag(), "region-sum segments already disagree")
			}
		}
	}

	// Intersect achievable-total intervals across all segments to
	// derive a working total range even with no fully-known segment.
	loBound, hiBound := 1, 81
	for _, seg := range segs {
		_, _, lo, hi := rs.segmentBounds(g, seg)
		if lo > loBound {
			loBound = lo
		}
		if hi < hiBound {
			hiBound = hi
		}
	}
	if knownTotal != -1 {
		if knownTotal < loBound || knownTotal > hiBound {
			return nil, lib.InconsistentErr(rs.Tag(), "region-sum total is unachievable by some segment")
		}
		loBound, hiBound = knownTotal, knownTotal
	}
	if loBound > hiBound {
		return nil, lib.InconsistentErr(rs.Tag(), "region-sum segment bounds do not overlap")
	}

	out := make(map[lib.Coord]lib.DigitSet)
	for _, seg := range segs {
		sum, empties, _, _ := rs.segmentBounds(g, seg)
		if empties == 0 {
			continue
		}
		for _, i := range seg {
			cell := rs.Cells[i]
			if g.Get(cell.Row, cell.Col) != 0 {
				continue
			}
			var ds lib.DigitSet
			for d := 1; d <= 9; d++ {
				remaining := sum + d
				restEmpties := empties - 1
				lo := remaining + restEmpties*1
				hi := remaining + restEmpties*9
				if loBound <= hi && hiBound >= lo {
					ds = ds.Add(d)
				}
			}
			if ds.IsEmpty() {
				return nil, lib.NoPossibilitiesErr(cell, rs.Tag(), "no digit keeps region-sum segments in range")
			}
			out[cell] = ds
		}
	}
	return out, nil
}
