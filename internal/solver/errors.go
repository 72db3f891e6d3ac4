package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsolvable marks a run that stalled or hit a contradiction.
	// The concrete error is always an *UnsolvableError.
	ErrUnsolvable = errors.New("not solvable by deduction")

	// ErrInvalidGrid marks input outside the 9x9 value domain.
	ErrInvalidGrid = errors.New("invalid grid")
)

// UnsolvableError carries the residual candidate table of a failed run
// so callers can report exactly where deduction got stuck.
type UnsolvableError struct {
	// Remaining holds the unsolved cells and their candidates at the
	// moment the run gave up. A cell with an empty candidate list is
	// the contradiction.
	Remaining []CellCandidates

	// Contradiction is true when a cell lost every candidate, false
	// when the worklist stalled without progress.
	Contradiction bool
}

func (e *UnsolvableError) Error() string {
	if e.Contradiction {
		return fmt.Sprintf("%v: a cell has no remaining candidates (%d unsolved)",
			ErrUnsolvable, len(e.Remaining))
	}
	return fmt.Sprintf("%v: no strategy makes progress (%d unsolved)",
		ErrUnsolvable, len(e.Remaining))
}

func (e *UnsolvableError) Unwrap() error { return ErrUnsolvable }
