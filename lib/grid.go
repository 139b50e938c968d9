package lib

import (
	"fmt"

	"github.com/eftil/variant-sudoku/lib/observer"
	"github.com/eftil/variant-sudoku/lib/utils"
)

// Grid holds the 81 cells, per-cell candidate sets and the ordered
// list of variants attached to the puzzle. It maintains the invariant
// between placed digits and candidate sets described in spec.md §3.
type Grid struct {
	cells [81]int
	poss  [81]DigitSet // meaningful only where cells[i] == 0

	variants    []Variant
	byCell      [81][]Variant // variants constraining each cell, for propagation scoping
	Notifier    *observer.Notifier
}

// poSnapshot is a cheap, fixed-size copy of the candidate map used by
// the solver to undo speculative placements.
type poSnapshot [81]DigitSet

// NewGrid returns an empty grid: every cell 0, every candidate set
// AllDigits.
func NewGrid() *Grid {
	g := &Grid{Notifier: observer.NewNotifier()}
	for i := range g.poss {
		g.poss[i] = AllDigits
	}
	return g
}

func inRange(v int) bool { return v >= 0 && v <= 8 }

// Get returns the digit at (r,c), or 0 if empty.
func (g *Grid) Get(r, c int) int {
	if !inRange(r) || !inRange(c) {
		return 0
	}
	return g.cells[index(r, c)]
}

// Candidates returns the current candidate set for (r,c): the
// singleton of its value if assigned, else its possibility set.
func (g *Grid) Candidates(r, c int) DigitSet {
	if !inRange(r) || !inRange(c) {
		return 0
	}
	idx := index(r, c)
	if g.cells[idx] != 0 {
		return Singleton(g.cells[idx])
	}
	return g.poss[idx]
}

// AddVariant attaches v to the grid and indexes it by the cells it
// constrains, so propagation can find it in O(1) per placement.
func (g *Grid) AddVariant(v Variant) {
	g.variants = append(g.variants, v)
	for _, cell := range v.ConstrainedCells() {
		if inRange(cell.Row) && inRange(cell.Col) {
			idx := index(cell.Row, cell.Col)
			g.byCell[idx] = append(g.byCell[idx], v)
		}
	}
}

// Variants returns the configured variants in insertion order.
func (g *Grid) Variants() []Variant {
	return g.variants
}

// Set writes v to (r,c). v == 0 clears the cell without touching
// candidate sets (the caller, normally the solver, is responsible for
// restoring them from a snapshot). v in 1..9 is rejected with an error
// if another cell in the same row, column or box already holds v;
// otherwise it places the digit and runs the propagation contract of
// spec.md §4.3, returning a *Contradiction if any variant can no longer
// satisfy its rule.
func (g *Grid) Set(r, c, v int) error {
	if !inRange(r) || !inRange(c) {
		return fmt.Errorf("cell (%d,%d) out of range", r, c)
	}
	if v < 0 || v > 9 {
		return fmt.Errorf("value %d out of range", v)
	}

	idx := index(r, c)

	if v == 0 {
		if g.cells[idx] != 0 {
			g.Notifier.NotifyClear(r, c)
		}
		g.cells[idx] = 0
		return nil
	}

	for _, peers := range [3][9]int{rowIndices(r), colIndices(c), boxIndices(Coord{r, c}.Box())} {
		for _, peerIdx := range peers {
			if peerIdx != idx && g.cells[peerIdx] == v {
				return fmt.Errorf("digit %d at (%d,%d) is already in its row, column or box", v, r, c)
			}
		}
	}

	g.cells[idx] = v
	g.Notifier.NotifyPlace(r, c, v)

	// Step 1: strip v from every other empty peer in row/col/box.
	for _, peerIdx := range rowIndices(r) {
		g.eliminate(peerIdx, v)
	}
	for _, peerIdx := range colIndices(c) {
		g.eliminate(peerIdx, v)
	}
	for _, peerIdx := range boxIndices(Coord{r, c}.Box()) {
		g.eliminate(peerIdx, v)
	}

	// Step 2: intersect in every constraining variant's candidates.
	for _, variant := range g.byCell[idx] {
		if err := g.applyVariant(variant); err != nil {
			return err
		}
	}

	// Step 3: the placed cell no longer holds a possibility entry.
	g.poss[idx] = 0

	return nil
}

// eliminate removes v from peerIdx's candidate set if that cell is
// still empty.
func (g *Grid) eliminate(peerIdx, v int) {
	if g.cells[peerIdx] == 0 {
		g.poss[peerIdx] = g.poss[peerIdx].Remove(v)
	}
}

// applyVariant intersects variant's reported candidates into the
// grid's possibility map for every cell it still constrains.
func (g *Grid) applyVariant(variant Variant) error {
	result, err := variant.Candidates(g)
	if err != nil {
		return err
	}
	for cell, ds := range result {
		idx := index(cell.Row, cell.Col)
		if g.cells[idx] != 0 {
			continue // assigned cells don't carry a possibility entry
		}
		g.poss[idx] = g.poss[idx].Intersect(ds)
		if g.poss[idx].IsEmpty() {
			return NoPossibilitiesErr(cell, variant.Tag(), "variant candidates intersected to empty set")
		}
	}
	return nil
}

// ApplyAllVariants recomputes every variant's candidates across the
// whole grid and intersects them in. Used once at the start of a
// solve (spec.md §4.4 step 1); later updates happen incrementally via
// Set's propagation.
func (g *Grid) ApplyAllVariants() error {
	for _, variant := range g.variants {
		if err := g.applyVariant(variant); err != nil {
			return err
		}
	}
	return nil
}

// ResetClassicCandidates recomputes every empty cell's candidate set
// from classic row/column/box exclusion alone, discarding any
// variant-derived narrowing. Used to (re)build the baseline before
// ApplyAllVariants.
func (g *Grid) ResetClassicCandidates() {
	for idx := range g.cells {
		if g.cells[idx] != 0 {
			g.poss[idx] = 0
			continue
		}
		r, c := idx/9, idx%9
		ds := AllDigits
		for _, peerIdx := range rowIndices(r) {
			if v := g.cells[peerIdx]; v != 0 {
				ds = ds.Remove(v)
			}
		}
		for _, peerIdx := range colIndices(c) {
			if v := g.cells[peerIdx]; v != 0 {
				ds = ds.Remove(v)
			}
		}
		for _, peerIdx := range boxIndices(Coord{r, c}.Box()) {
			if v := g.cells[peerIdx]; v != 0 {
				ds = ds.Remove(v)
			}
		}
		g.poss[idx] = ds
	}
}

// IsMoveLocallyValid reports whether placing v at (r,c) is permitted
// by classic rules and by every attached variant's LocalIsValid.
func (g *Grid) IsMoveLocallyValid(r, c, v int) bool {
	if !inRange(r) || !inRange(c) || v < 1 || v > 9 {
		return false
	}
	for _, peerIdx := range rowIndices(r) {
		if peerIdx != index(r, c) && g.cells[peerIdx] == v {
			return false
		}
	}
	for _, peerIdx := range colIndices(c) {
		if peerIdx != index(r, c) && g.cells[peerIdx] == v {
			return false
		}
	}
	for _, peerIdx := range boxIndices(Coord{r, c}.Box()) {
		if peerIdx != index(r, c) && g.cells[peerIdx] == v {
			return false
		}
	}
	for _, variant := range g.variants {
		if !variant.LocalIsValid(g, r, c, v) {
			return false
		}
	}
	return true
}

// IsBoardValid reports whether every row, column and box is currently
// a permutation of 1..9.
func (g *Grid) IsBoardValid() bool {
	for u := 0; u < 27; u++ {
		values := make([]int, 9)
		for i, idx := range units[u] {
			values[i] = g.cells[idx]
		}
		for _, v := range values {
			if v == 0 {
				return false
			}
		}
		if !utils.HasUniqueNonZeros(values) {
			return false
		}
	}
	return true
}

// String renders the grid as 9 lines of 9 digits, '.' for empty cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, 90)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g.Get(r, c)
			if v == 0 {
				buf = append(buf, '.')
			} else {
				buf = append(buf, byte('0'+v))
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// IsFullyAssigned reports whether every cell holds a digit.
func (g *Grid) IsFullyAssigned() bool {
	for _, v := range g.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// snapshot captures the candidate map for later restoration.
func (g *Grid) snapshot() poSnapshot {
	return poSnapshot(g.poss)
}

// restore overwrites the candidate map with a prior snapshot.
func (g *Grid) restore(s poSnapshot) {
	g.poss = [81]DigitSet(s)
}

// snapshotCells captures the full assignment, used to restore the
// grid to its pre-solve state on failure.
func (g *Grid) snapshotCells() [81]int {
	return g.cells
}

func (g *Grid) restoreCells(s [81]int) {
	g.cells = s
}
