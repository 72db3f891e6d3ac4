package solver

import (
	"iter"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// Table tracks the remaining candidates of unsolved cells. Entries are
// narrowed by eliminations and removed only when a cell resolves; an
// entry that loses every candidate stays present and marks a
// contradiction.
type Table struct {
	masks   [Cells]Mask
	present [Cells]bool
	n       int
}

// NewTable builds a table covering every empty cell of b.
func NewTable(b *domain.Board) *Table {
	t := &Table{}
	for idx := 0; idx < Cells; idx++ {
		row, col := Coord(idx)
		if b.Values[row][col] == 0 {
			t.put(idx, PossibleMask(b, idx))
		}
	}
	return t
}

func (t *Table) put(idx int, m Mask) {
	if !t.present[idx] {
		t.present[idx] = true
		t.n++
	}
	t.masks[idx] = m
}

func (t *Table) remove(idx int) {
	if t.present[idx] {
		t.present[idx] = false
		t.masks[idx] = 0
		t.n--
	}
}

// Get returns the candidate mask of a tracked cell.
func (t *Table) Get(idx int) (Mask, bool) { return t.masks[idx], t.present[idx] }

// Has reports whether the cell is tracked.
func (t *Table) Has(idx int) bool { return t.present[idx] }

// Len returns the number of tracked cells.
func (t *Table) Len() int { return t.n }

// Eliminate clears candidates from a tracked cell and reports whether
// the mask changed. Untracked cells are ignored.
func (t *Table) Eliminate(idx int, bad Mask) bool {
	if !t.present[idx] {
		return false
	}
	next := t.masks[idx] &^ bad
	if next == t.masks[idx] {
		return false
	}
	t.masks[idx] = next
	return true
}

// Indices iterates tracked cells in ascending order. Masks may be
// narrowed during iteration; entries must not be added or removed.
func (t *Table) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for idx := 0; idx < Cells; idx++ {
			if t.present[idx] && !yield(idx) {
				return
			}
		}
	}
}

// empty returns the first tracked cell with no remaining candidates.
func (t *Table) empty() (int, bool) {
	for idx := 0; idx < Cells; idx++ {
		if t.present[idx] && t.masks[idx] == 0 {
			return idx, true
		}
	}
	return 0, false
}

// CellCandidates reports the remaining candidates of one unsolved cell.
type CellCandidates struct {
	Cell       domain.CellCoord `json:"cell"`
	Candidates []uint8          `json:"candidates"`
}

// Snapshot lists every tracked cell and its candidates in raster order.
func (t *Table) Snapshot() []CellCandidates {
	out := make([]CellCandidates, 0, t.n)
	for idx := 0; idx < Cells; idx++ {
		if !t.present[idx] {
			continue
		}
		row, col := Coord(idx)
		out = append(out, CellCandidates{
			Cell:       domain.CellCoord{Row: row, Col: col},
			Candidates: t.masks[idx].Values(),
		})
	}
	return out
}

// PossibleMask computes a cell's candidates directly from the grid:
// every value not already placed in its row, column, or box. A filled
// cell's mask is its own value.
func PossibleMask(b *domain.Board, idx int) Mask {
	row, col := Coord(idx)
	if v := b.Values[row][col]; v != 0 {
		return MaskOf(v)
	}
	var used Mask
	for _, p := range Peers(idx) {
		pr, pc := Coord(p)
		if v := b.Values[pr][pc]; v != 0 {
			used |= 1 << v
		}
	}
	return FullMask &^ used
}
