package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
)

var deducedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

// printBoard renders the grid, coloring deduced cells when stdout is a
// terminal and plain otherwise.
func printBoard(w io.Writer, b *domain.Board) {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(w, styledBoard(b))
		return
	}
	fmt.Fprint(w, b.String())
}

// styledBoard matches Board.String but renders non-given values in
// color.
func styledBoard(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			switch v := b.Values[r][c]; {
			case v == 0:
				sb.WriteByte('.')
			case b.Fixed[r][c]:
				sb.WriteByte('0' + v)
			default:
				sb.WriteString(deducedStyle.Render(string('0' + rune(v))))
			}
			if c != 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// printResidual lists the cells where deduction stopped.
func printResidual(w io.Writer, err error) {
	var ue *solver.UnsolvableError
	if !errors.As(err, &ue) {
		return
	}
	for _, cc := range ue.Remaining {
		fmt.Fprintf(w, "  (%d,%d): %v\n", cc.Cell.Row, cc.Cell.Col, cc.Candidates)
	}
}

// printStats reports the engine counters for one run.
func printStats(w io.Writer, stats solver.Stats) {
	fmt.Fprintf(w, "assignments: %d\n", stats.Assignments)
	fmt.Fprintf(w, "cycles: %d\n", stats.Cycles)
	fmt.Fprintf(w, "duration: %s\n", stats.Duration.Round(time.Microsecond))
	for _, name := range slices.Sorted(maps.Keys(stats.Eliminations)) {
		fmt.Fprintf(w, "eliminations[%s]: %d\n", name, stats.Eliminations[name])
	}
}
