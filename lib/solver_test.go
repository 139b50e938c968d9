package lib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

func mustSetAll(t *testing.T, g *lib.Grid, rows [9]string) {
	t.Helper()
	for r, line := range rows {
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			require.NoError(t, g.Set(r, c, int(ch-'0')))
		}
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	g := lib.NewGrid()
	givens := [9]string{
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	}
	mustSetAll(t, g, givens)

	solver := lib.NewSolver(g)
	require.True(t, solver.Solve())
	assert.False(t, solver.ExceededBudget())
	assert.True(t, g.IsBoardValid())

	want := [9]string{
		"534678912",
		"672195348",
		"198342567",
		"859761423",
		"426853791",
		"713924856",
		"961537284",
		"287419635",
		"345286179",
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.Equal(t, int(want[r][c]-'0'), g.Get(r, c), "mismatch at (%d,%d)", r, c)
		}
	}
}

func TestSolveRestoresGridOnBudgetExhaustion(t *testing.T) {
	g := lib.NewGrid()
	require.NoError(t, g.Set(0, 0, 5))

	solver := lib.NewSolver(g)
	solver.SetMaxSteps(0)
	ok := solver.Solve()

	assert.False(t, ok)
	assert.True(t, solver.ExceededBudget())
	assert.Equal(t, 5, g.Get(0, 0))
	assert.Equal(t, 0, g.Get(0, 1))
}

func TestSetRejectsGivenRepeatedInRow(t *testing.T) {
	g := lib.NewGrid()
	// Two 5s in the same row is contradictory under classic rules alone,
	// and g.Set itself rejects it before any search runs.
	require.NoError(t, g.Set(0, 0, 5))
	err := g.Set(0, 1, 5)
	assert.Error(t, err)
}

func TestSolveWithDiagonalAndKillerCage(t *testing.T) {
	g := lib.NewGrid()

	diag := variants.NewMainDiagonal()
	g.AddVariant(diag)

	cage, err := variants.NewKillerCage([]lib.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, 11)
	require.NoError(t, err)
	g.AddVariant(cage)

	solver := lib.NewSolver(g)
	require.True(t, solver.Solve())

	assert.True(t, diag.ValidateSolution(g))
	assert.True(t, cage.ValidateSolution(g))
	assert.True(t, g.IsBoardValid())
}

func TestDebugStatsPopulatedAfterSolve(t *testing.T) {
	g := lib.NewGrid()
	solver := lib.NewSolver(g)
	solver.Debug = true
	require.True(t, solver.Solve())

	stats := solver.Stats()
	require.NotNil(t, stats)
	assert.NotEmpty(t, stats.TraceID)
	assert.Greater(t, stats.Placements, 0)
}
