// Command sudoku drives the variant-sudoku core from a puzzle file on
// disk. It is a thin external adapter (spec.md §2) around the core in
// lib: it parses, solves, prints, and sets an exit code; it holds no
// solving logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eftil/variant-sudoku/internal/puzzle"
	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/logger"
)

const (
	exitSolved         = 0
	exitUnsatisfiable  = 2
	exitInputError     = 3
	exitBudgetExceeded = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	var debug bool
	var maxSteps int

	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve classic and variant Sudoku puzzles",
	}

	solveCmd := &cobra.Command{
		Use:   "solve <puzzlefile>",
		Short: "Solve a puzzle described in the text puzzle format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logger.SetLevel(zerolog.DebugLevel)
			}
			return solveFile(args[0], debug, maxSteps)
		},
	}
	solveCmd.Flags().BoolVar(&debug, "debug", false, "log solving steps and print a trace summary")
	solveCmd.Flags().IntVar(&maxSteps, "max-steps", lib.MaxSteps, "recursive step budget before giving up")

	root.AddCommand(solveCmd)

	exitCode := exitSolved
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		if code, ok := err.(exitError); ok {
			exitCode = int(code)
		} else {
			fmt.Fprintln(os.Stderr, err)
			exitCode = exitInputError
		}
	}
	return exitCode
}

// exitError lets solveFile communicate a specific process exit code
// back through cobra's RunE error return.
type exitError int

func (e exitError) Error() string { return "" }

func solveFile(path string, debug bool, maxSteps int) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening puzzle file: %v\n", err)
		return exitError(exitInputError)
	}
	defer f.Close()

	grid, err := puzzle.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing puzzle: %v\n", err)
		return exitError(exitInputError)
	}

	solver := lib.NewSolver(grid)
	solver.Debug = debug
	solver.SetMaxSteps(maxSteps)

	if solver.Solve() {
		fmt.Print(grid.String())
		return nil
	}

	if solver.ExceededBudget() {
		fmt.Fprintln(os.Stderr, "step budget exceeded before a solution was found")
		return exitError(exitBudgetExceeded)
	}
	fmt.Fprintln(os.Stderr, "puzzle has no solution under the given givens")
	return exitError(exitUnsatisfiable)
}
