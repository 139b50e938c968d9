package lib

import (
	"github.com/eftil/variant-sudoku/lib/logger"
	"github.com/eftil/variant-sudoku/lib/observer"
)

// MaxSteps is the hard step budget from spec.md §4.4 / §8 scenario 6.
const MaxSteps = 1_000_000

// Solver runs a most-constrained-cell backtracking search over a
// Grid, augmented by the inference passes in inference.go. A Solver
// is single-use: construct a fresh one per Solve call.
type Solver struct {
	grid     *Grid
	steps    int
	maxSteps int

	budgetExceeded bool

	// Debug, when true, attaches an observer.StatsObserver to the
	// grid and logs a summary via lib/logger when Solve returns.
	Debug bool
	stats *observer.StatsObserver
}

// NewSolver returns a Solver for g with the default step budget.
func NewSolver(g *Grid) *Solver {
	return &Solver{grid: g, maxSteps: MaxSteps}
}

// SetMaxSteps overrides the step budget, e.g. from a CLI flag.
func (s *Solver) SetMaxSteps(n int) {
	s.maxSteps = n
}

// ExceededBudget reports whether the most recent Solve call returned
// false because the step budget was exhausted, as opposed to the
// puzzle being genuinely unsatisfiable. This is the optional
// diagnostic channel spec.md §7.2 allows for; the boolean Solve
// return alone cannot distinguish the two.
func (s *Solver) ExceededBudget() bool {
	return s.budgetExceeded
}

// Stats returns the run's diagnostic counters, or nil if Debug was
// not set before Solve was called.
func (s *Solver) Stats() *observer.StatsObserver {
	return s.stats
}

// Solve attempts to fully assign the grid. On success every cell
// holds a digit and every classic/variant rule is satisfied. On
// failure the grid is restored to exactly the state it had on entry.
func (s *Solver) Solve() bool {
	if s.Debug {
		s.stats = observer.NewStatsObserver()
		s.grid.Notifier.Add(s.stats)
	}

	cellsSnap := s.grid.snapshotCells()
	possSnap := s.grid.snapshot()

	s.grid.ResetClassicCandidates()
	if err := s.grid.ApplyAllVariants(); err != nil {
		logger.Debug("initial propagation failed: %v", err)
		s.grid.restoreCells(cellsSnap)
		s.grid.restore(possSnap)
		return false
	}

	ok := s.search()
	if !ok {
		s.grid.restoreCells(cellsSnap)
		s.grid.restore(possSnap)
	}

	if s.Debug && s.stats != nil {
		logger.WithTrace(s.stats.TraceID).Info().
			Int("placements", s.stats.Placements).
			Int("backtracks", s.stats.Backtracks).
			Int("contradictions", s.stats.Contradictions).
			Int("steps", s.steps).
			Bool("solved", ok).
			Msg("solve finished")
	}

	return ok
}

// selectionOutcome tags what selectCell found.
type selectionOutcome int

const (
	fullyAssigned selectionOutcome = iota
	deadEnd
	selected
)

// selectCell scans the grid for the empty cell with the fewest
// candidates, ties broken by iteration order (spec.md §4.4 step 2).
func (s *Solver) selectCell() (idx int, outcome selectionOutcome) {
	best := -1
	bestCount := 10
	for i := 0; i < 81; i++ {
		if s.grid.cells[i] != 0 {
			continue
		}
		count := s.grid.poss[i].Count()
		if count == 0 {
			return i, deadEnd
		}
		if count < bestCount {
			bestCount = count
			best = i
		}
	}
	if best == -1 {
		return 0, fullyAssigned
	}
	return best, selected
}

// search is the recursive DFS core described in spec.md §4.4.
func (s *Solver) search() bool {
	s.steps++
	if s.steps > s.maxSteps {
		s.budgetExceeded = true
		return false
	}

	idx, outcome := s.selectCell()
	switch outcome {
	case fullyAssigned:
		return s.grid.IsBoardValid() && s.allVariantsValid()
	case deadEnd:
		return false
	}

	r, c := idx/9, idx%9
	digits := s.grid.poss[idx].Slice()
	snap := s.grid.snapshot()

	for _, d := range digits {
		s.grid.restore(snap)

		if err := s.grid.Set(r, c, d); err != nil {
			s.grid.Notifier.NotifyContradiction(err.Error())
			continue
		}

		if err := s.applyInference(); err != nil {
			s.grid.Notifier.NotifyContradiction(err.Error())
			_ = s.grid.Set(r, c, 0)
			continue
		}

		if s.search() {
			return true
		}

		_ = s.grid.Set(r, c, 0)
	}

	s.grid.restore(snap)
	_ = s.grid.Set(r, c, 0)
	return false
}

func (s *Solver) allVariantsValid() bool {
	for _, v := range s.grid.Variants() {
		if !v.ValidateSolution(s.grid) {
			return false
		}
	}
	return true
}
