package solver

import (
	"iter"
	"maps"
	"time"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// Step is one deduced assignment.
type Step struct {
	Cell  domain.CellCoord `json:"cell"`
	Value uint8            `json:"value"`
}

// Stats summarizes the work a run performed.
type Stats struct {
	Assignments  int
	Cycles       int // worklist dequeues
	Eliminations map[domain.Strategy]int
	Duration     time.Duration
}

// Run walks a board toward a solution one deduction at a time. It is a
// single-use cursor in the manner of bufio.Scanner: Next advances to
// the next assignment, Step reports it, and Err explains a stop. The
// bound board is written as assignments are produced. A Run is not safe
// for concurrent use and cannot be restarted.
type Run struct {
	board      *domain.Board
	table      *Table
	queue      []int
	timesLeft  int
	strategies []Strategy
	step       Step
	err        error
	done       bool
	stats      Stats
	started    time.Time
}

// Next advances to the next assignment. It returns false when the board
// has no tracked cells left or the run failed; Err distinguishes the
// two.
func (r *Run) Next() bool {
	if r.done || r.err != nil {
		return false
	}
	for len(r.queue) > 0 {
		idx := r.queue[0]
		r.queue = r.queue[1:]
		if !r.table.Has(idx) {
			// Duplicate requested position, resolved earlier.
			continue
		}
		r.stats.Cycles++

		for _, s := range r.strategies {
			for cell, bad := range s.Find(r.table) {
				if r.table.Eliminate(cell, bad) {
					r.stats.Eliminations[s.Name()]++
				}
			}
		}
		if _, stuck := r.table.empty(); stuck {
			r.fail(true)
			return false
		}

		m, _ := r.table.Get(idx)
		if v := m.Single(); v != 0 {
			r.resolve(idx, v)
			return true
		}

		r.queue = append(r.queue, idx)
		r.timesLeft--
		switch r.timesLeft {
		case 1:
			// Last chance: rebuild every queued cell's candidates from
			// the grid in case a strategy over-pruned.
			for _, q := range r.queue {
				r.table.put(q, PossibleMask(r.board, q))
			}
		case 0:
			r.fail(false)
			return false
		}
	}
	r.done = true
	r.stats.Duration = time.Since(r.started)
	return false
}

// Step returns the assignment produced by the last successful Next.
func (r *Run) Step() Step { return r.step }

// Err returns nil while the run can still progress or after it
// completed; otherwise the *UnsolvableError that stopped it.
func (r *Run) Err() error { return r.err }

// Remaining returns the number of cells still unsolved.
func (r *Run) Remaining() int { return r.table.Len() }

// Stats returns a snapshot of the run's counters.
func (r *Run) Stats() Stats {
	s := r.stats
	s.Eliminations = maps.Clone(s.Eliminations)
	if !r.done && r.err == nil {
		s.Duration = time.Since(r.started)
	}
	return s
}

// Steps adapts the cursor to a range loop. The sequence ends at
// completion or failure; check Err afterward.
func (r *Run) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for r.Next() {
			if !yield(r.step) {
				return
			}
		}
	}
}

func (r *Run) resolve(idx int, v uint8) {
	row, col := Coord(idx)
	r.board.Values[row][col] = v
	r.table.remove(idx)
	for _, p := range Peers(idx) {
		r.table.Eliminate(p, MaskOf(v))
	}
	r.timesLeft = len(r.queue) + 2
	r.step = Step{Cell: domain.CellCoord{Row: row, Col: col}, Value: v}
	r.stats.Assignments++
	if r.table.Len() == 0 {
		r.done = true
		r.stats.Duration = time.Since(r.started)
	}
}

func (r *Run) fail(contradiction bool) {
	r.err = &UnsolvableError{Remaining: r.table.Snapshot(), Contradiction: contradiction}
	r.stats.Duration = time.Since(r.started)
}
