package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
)

var (
	showSteps   bool
	showStats   bool
	solveSample string

	solveCmd = &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle and print the completed grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
)

func init() {
	solveCmd.Flags().BoolVar(&showSteps, "steps", false, "list each assignment in deduction order")
	solveCmd.Flags().BoolVar(&showStats, "stats", false, "print engine counters")
	solveCmd.Flags().StringVar(&solveSample, "sample", "", "solve an embedded sample puzzle")
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := readBoard(cmd, args, solveSample)
	if err != nil {
		return err
	}
	if showSteps || showStats {
		return solveVerbose(cmd, b)
	}
	solved, _, err := solver.NewDeductive(engineOptions()...).Solve(cmd.Context(), b)
	if err != nil {
		printResidual(cmd.ErrOrStderr(), err)
		return err
	}
	printBoard(cmd.OutOrStdout(), solved)
	return nil
}

// solveVerbose runs the engine cursor directly so each assignment and
// the per-strategy counters can be reported.
func solveVerbose(cmd *cobra.Command, b *domain.Board) error {
	run, err := newEngine().Run(b)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for run.Next() {
		if showSteps {
			s := run.Step()
			fmt.Fprintf(out, "(%d,%d) = %d\n", s.Cell.Row, s.Cell.Col, s.Value)
		}
	}
	if err := run.Err(); err != nil {
		printResidual(cmd.ErrOrStderr(), err)
		return err
	}
	printBoard(out, b)
	if showStats {
		printStats(out, run.Stats())
	}
	return nil
}
