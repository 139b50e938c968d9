package observer

import "github.com/google/uuid"

// StatsObserver accumulates simple counters over one Solve call and
// tags the run with a trace id, so the CLI's --debug output and the
// structured logger can correlate the events of a single solve.
type StatsObserver struct {
	TraceID       string
	Placements    int
	Backtracks    int
	Contradictions int
}

// NewStatsObserver creates a StatsObserver with a fresh trace id.
func NewStatsObserver() *StatsObserver {
	return &StatsObserver{TraceID: uuid.NewString()}
}

func (s *StatsObserver) OnPlace(row, col, value int) {
	s.Placements++
}

func (s *StatsObserver) OnClear(row, col int) {
	s.Backtracks++
}

func (s *StatsObserver) OnContradiction(reason string) {
	s.Contradictions++
}
