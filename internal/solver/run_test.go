package solver

import (
	"errors"
	"strings"
	"testing"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

const (
	// Wikipedia's example puzzle and its solution.
	easyBoard    = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	easySolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	mediumBoard    = "200090008300207006067000520602108305000504000705903401024000870800702004500040002"
	mediumSolution = "251496738398257146467381529642178395139564287785923461924615873816732954573849612"

	// easySolution with five cells blanked, each recoverable without
	// any strategy beyond singles.
	almostSolved = "004678912672195348198042567859761423426803791713924856961537284287419635045286179"
)

func TestSolveEasy(t *testing.T) {
	b := mustParse(t, easyBoard)
	stats, err := New().Solve(b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := b.Compact(); got != easySolution {
		t.Fatalf("solved to\n%s\nwant\n%s", got, easySolution)
	}
	if stats.Assignments != 51 {
		t.Errorf("Assignments = %d, want 51", stats.Assignments)
	}
	if stats.Cycles < stats.Assignments {
		t.Errorf("Cycles = %d, below Assignments", stats.Cycles)
	}
	if stats.Duration <= 0 {
		t.Errorf("Duration = %v", stats.Duration)
	}
}

func TestSolveMedium(t *testing.T) {
	b := mustParse(t, mediumBoard)
	stats, err := New().Solve(b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := b.Compact(); got != mediumSolution {
		t.Fatalf("solved to\n%s\nwant\n%s", got, mediumSolution)
	}
	if stats.Assignments != 45 {
		t.Errorf("Assignments = %d, want 45", stats.Assignments)
	}
}

func TestSolveHiddenSingleOnly(t *testing.T) {
	b := mustParse(t, almostSolved)
	e := New(WithStrategies(HiddenSingle{}))
	stats, err := e.Solve(b)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := b.Compact(); got != easySolution {
		t.Fatalf("solved to\n%s\nwant\n%s", got, easySolution)
	}
	if stats.Assignments != 5 {
		t.Errorf("Assignments = %d, want 5", stats.Assignments)
	}
	if stats.Eliminations[domain.StrategyHiddenSingle] == 0 {
		t.Error("hidden single never fired")
	}
}

func TestRunStreamsAssignments(t *testing.T) {
	b := mustParse(t, mediumBoard)
	givens := *b

	run, err := New().Run(b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := run.Remaining(); got != 45 {
		t.Fatalf("Remaining = %d, want 45", got)
	}

	seen := make(map[domain.CellCoord]bool)
	for run.Next() {
		step := run.Step()
		if seen[step.Cell] {
			t.Fatalf("cell %+v assigned twice", step.Cell)
		}
		seen[step.Cell] = true
		if givens.Values[step.Cell.Row][step.Cell.Col] != 0 {
			t.Fatalf("cell %+v was a given", step.Cell)
		}
		if step.Value < 1 || step.Value > 9 {
			t.Fatalf("value %d out of range", step.Value)
		}
		if got := b.Values[step.Cell.Row][step.Cell.Col]; got != step.Value {
			t.Fatalf("board holds %d at %+v, step says %d", got, step.Cell, step.Value)
		}
	}
	if err := run.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(seen) != 45 {
		t.Errorf("%d assignments, want 45", len(seen))
	}
	if run.Remaining() != 0 {
		t.Errorf("Remaining = %d after the run", run.Remaining())
	}
	if run.Next() {
		t.Error("Next returned true after completion")
	}
}

func TestRunStepsSeq(t *testing.T) {
	b := mustParse(t, mediumBoard)
	run, err := New().Run(b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Breaking out of the range leaves the cursor usable.
	var first []Step
	for step := range run.Steps() {
		first = append(first, step)
		if len(first) == 3 {
			break
		}
	}
	if len(first) != 3 {
		t.Fatalf("collected %d steps, want 3", len(first))
	}
	rest := 0
	for range run.Steps() {
		rest++
	}
	if got := len(first) + rest; got != 45 {
		t.Errorf("total steps = %d, want 45", got)
	}
	if got := b.Compact(); got != mediumSolution {
		t.Errorf("solved to %s", got)
	}
}

func TestAlreadySolved(t *testing.T) {
	b := mustParse(t, easySolution)
	run, err := New().Run(b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if run.Next() {
		t.Fatal("Next produced a step on a solved board")
	}
	if err := run.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if stats := run.Stats(); stats.Assignments != 0 {
		t.Errorf("Assignments = %d, want 0", stats.Assignments)
	}
}

func TestBlankGridUnsolvable(t *testing.T) {
	b := mustParse(t, strings.Repeat("0", 81))
	_, err := New().Solve(b)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
	var ue *UnsolvableError
	if !errors.As(err, &ue) {
		t.Fatalf("err %T is not *UnsolvableError", err)
	}
	if ue.Contradiction {
		t.Error("blank grid reported as contradiction")
	}
	if len(ue.Remaining) != 81 {
		t.Fatalf("Remaining has %d cells, want 81", len(ue.Remaining))
	}
	for _, cc := range ue.Remaining {
		if len(cc.Candidates) != 9 {
			t.Fatalf("cell %+v narrowed to %v", cc.Cell, cc.Candidates)
		}
	}
}

func TestDuplicateGivensStall(t *testing.T) {
	b := mustParse(t, "55"+strings.Repeat("0", 79))
	_, err := New().Solve(b)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
	var ue *UnsolvableError
	if !errors.As(err, &ue) {
		t.Fatalf("err %T is not *UnsolvableError", err)
	}
	if len(ue.Remaining) != 79 {
		t.Errorf("Remaining has %d cells, want 79", len(ue.Remaining))
	}
}

func TestContradictionDetected(t *testing.T) {
	// (0,8) must be 9 by its row, but the 9 below already claims it.
	b := mustParse(t, "123456780"+"000000009"+strings.Repeat("0", 63))
	_, err := New().Solve(b)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("err = %v, want ErrUnsolvable", err)
	}
	var ue *UnsolvableError
	if !errors.As(err, &ue) {
		t.Fatalf("err %T is not *UnsolvableError", err)
	}
	if !ue.Contradiction {
		t.Error("dead cell not reported as contradiction")
	}
	found := false
	for _, cc := range ue.Remaining {
		if cc.Cell == (domain.CellCoord{Row: 0, Col: 8}) {
			found = true
			if len(cc.Candidates) != 0 {
				t.Errorf("dead cell still holds %v", cc.Candidates)
			}
		}
	}
	if !found {
		t.Error("dead cell missing from the residual table")
	}
}

func TestUnsolvableErrorMessages(t *testing.T) {
	stall := &UnsolvableError{Remaining: make([]CellCandidates, 4)}
	if msg := stall.Error(); !strings.Contains(msg, "no strategy makes progress") {
		t.Errorf("stall message = %q", msg)
	}
	dead := &UnsolvableError{Remaining: make([]CellCandidates, 2), Contradiction: true}
	if msg := dead.Error(); !strings.Contains(msg, "no remaining candidates") {
		t.Errorf("contradiction message = %q", msg)
	}
	if !errors.Is(dead, ErrUnsolvable) {
		t.Error("UnsolvableError does not unwrap to ErrUnsolvable")
	}
}
