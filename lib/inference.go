package lib

import "github.com/eftil/variant-sudoku/lib/utils"

// applyInference runs the three human-style passes from spec.md §4.5,
// in the order naked subsets, pointing pairs, hidden subsets, and
// repeats that sweep until a full sweep changes no candidate set, so
// a second call without an intervening placement changes nothing. Any
// pass may return a *Contradiction.
func (s *Solver) applyInference() error {
	for {
		before := s.grid.snapshot()
		if err := applyNakedSubsets(s.grid); err != nil {
			return err
		}
		if err := applyPointingPairs(s.grid); err != nil {
			return err
		}
		if err := applyHiddenSubsets(s.grid); err != nil {
			return err
		}
		if s.grid.snapshot() == before {
			return nil
		}
	}
}

func emptyCellsIn(g *Grid, unit [9]int) []int {
	out := make([]int, 0, 9)
	for _, idx := range unit {
		if g.cells[idx] == 0 {
			out = append(out, idx)
		}
	}
	return out
}

// applyNakedSubsets implements naked pairs/triples/quads: in each
// unit, any k empty cells whose combined candidates number exactly k
// cannot hold any digit outside that set, so the set can be removed
// from every other cell in the unit.
func applyNakedSubsets(g *Grid) error {
	for _, unit := range units {
		empties := emptyCellsIn(g, unit)
		if len(empties) < 2 {
			continue
		}
		maxSize := 4
		if len(empties) < maxSize {
			maxSize = len(empties)
		}
		for size := 2; size <= maxSize; size++ {
			for _, combo := range utils.GenerateCombinations(len(empties), size) {
				var union DigitSet
				for _, ci := range combo {
					union = union.Union(g.poss[empties[ci]])
				}
				if union.Count() != size {
					continue
				}
				inSubset := make(map[int]bool, size)
				for _, ci := range combo {
					inSubset[empties[ci]] = true
				}
				for _, idx := range empties {
					if inSubset[idx] {
						continue
					}
					before := g.poss[idx]
					after := before.Minus(union)
					if after == before {
						continue
					}
					g.poss[idx] = after
					if after.IsEmpty() {
						return NoPossibilitiesErr(coordOf(idx), "naked-subset", "naked subset elimination emptied candidates")
					}
				}
			}
		}
	}
	return nil
}

// applyPointingPairs implements pointing pairs/triples: if every
// empty cell in a box admitting digit d lies in a single row (or
// column), d can be removed from that row's (column's) cells outside
// the box.
func applyPointingPairs(g *Grid) error {
	for box := 0; box < 9; box++ {
		cells := boxIndices(box)
		for d := 1; d <= 9; d++ {
			rows := map[int]bool{}
			cols := map[int]bool{}
			found := 0
			for _, idx := range cells {
				if g.cells[idx] != 0 || !g.poss[idx].Has(d) {
					continue
				}
				found++
				rows[idx/9] = true
				cols[idx%9] = true
			}
			if found == 0 {
				continue
			}
			if len(rows) == 1 {
				for r := range rows {
					for _, idx := range rowIndices(r) {
						if coordOf(idx).Box() == box || g.cells[idx] != 0 || !g.poss[idx].Has(d) {
							continue
						}
						g.poss[idx] = g.poss[idx].Remove(d)
						if g.poss[idx].IsEmpty() {
							return NoPossibilitiesErr(coordOf(idx), "pointing-pair", "pointing pair elimination emptied candidates")
						}
					}
				}
			}
			if len(cols) == 1 {
				for c := range cols {
					for _, idx := range colIndices(c) {
						if coordOf(idx).Box() == box || g.cells[idx] != 0 || !g.poss[idx].Has(d) {
							continue
						}
						g.poss[idx] = g.poss[idx].Remove(d)
						if g.poss[idx].IsEmpty() {
							return NoPossibilitiesErr(coordOf(idx), "pointing-pair", "pointing pair elimination emptied candidates")
						}
					}
				}
			}
		}
	}
	return nil
}

// applyHiddenSubsets implements hidden pairs/triples: if k digits are
// together confined to exactly k cells of a unit, and each of those
// cells admits every one of the k digits, those cells cannot hold any
// other digit.
func applyHiddenSubsets(g *Grid) error {
	for _, unit := range units {
		empties := emptyCellsIn(g, unit)
		if len(empties) < 2 {
			continue
		}

		locations := make(map[int][]int, 9)
		for d := 1; d <= 9; d++ {
			for _, idx := range empties {
				if g.poss[idx].Has(d) {
					locations[d] = append(locations[d], idx)
				}
			}
		}

		active := make([]int, 0, 9)
		for d := 1; d <= 9; d++ {
			if len(locations[d]) >= 2 {
				active = append(active, d)
			}
		}

		maxSize := 3
		if len(active) < maxSize {
			maxSize = len(active)
		}

		for size := 2; size <= maxSize; size++ {
			for _, combo := range utils.GenerateCombinations(len(active), size) {
				var allowed DigitSet
				digits := make([]int, size)
				for i, ci := range combo {
					digits[i] = active[ci]
					allowed = allowed.Add(active[ci])
				}

				cellUnion := map[int]bool{}
				for _, d := range digits {
					for _, idx := range locations[d] {
						cellUnion[idx] = true
					}
				}
				if len(cellUnion) != size {
					continue
				}

				allMatch := true
				for idx := range cellUnion {
					if !allowed.Minus(g.poss[idx]).IsEmpty() {
						allMatch = false
						break
					}
				}
				if !allMatch {
					continue
				}

				for idx := range cellUnion {
					before := g.poss[idx]
					after := before.Intersect(allowed)
					if after == before {
						continue
					}
					g.poss[idx] = after
					if after.IsEmpty() {
						return NoPossibilitiesErr(coordOf(idx), "hidden-subset", "hidden subset restriction emptied candidates")
					}
				}
			}
		}
	}
	return nil
}
