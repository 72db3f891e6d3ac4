package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/puzzles"
)

// readBoard resolves the puzzle for a command: an embedded sample, "-"
// for stdin, or a file path.
func readBoard(cmd *cobra.Command, args []string, sample string) (*domain.Board, error) {
	if sample != "" {
		return puzzles.Load(sample)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no puzzle given; pass a file, \"-\" for stdin, or --sample (%v)", puzzles.Names())
	}
	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return domain.ParseBoard(string(data))
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	return domain.ParseBoard(string(data))
}
