package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CoolCat467/Sudoku-Solver/internal/validator"
)

var (
	validateSample string

	validateCmd = &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a grid for row, column, and box conflicts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVar(&validateSample, "sample", "", "validate an embedded sample puzzle")
}

func runValidate(cmd *cobra.Command, args []string) error {
	b, err := readBoard(cmd, args, validateSample)
	if err != nil {
		return err
	}
	ok, conflicts, err := validator.New().Validate(cmd.Context(), b)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if ok {
		fmt.Fprintln(out, "ok: no conflicts")
		return nil
	}
	for _, cc := range conflicts {
		fmt.Fprintf(out, "conflict at (%d,%d)\n", cc.Row, cc.Col)
	}
	return fmt.Errorf("%d conflicting cells", len(conflicts))
}
