package solver

import (
	"iter"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// XWing finds a candidate confined to exactly two cells in each of two
// parallel lines at matching perpendicular positions. The four corners
// lock the candidate, so it is cleared from the rest of the two
// perpendicular lines. Rows are swept before columns; only the first
// pattern found is pruned, later ones surface on subsequent sweeps.
type XWing struct{}

func (XWing) Name() domain.Strategy { return domain.StrategyXWing }

func (XWing) Find(t *Table) iter.Seq2[int, Mask] {
	return func(yield func(int, Mask) bool) {
		for _, lines := range [2]*[Size][Size]int{&rowCells, &colCells} {
			perp := &colCells
			if lines == &colCells {
				perp = &rowCells
			}
			for v := uint8(1); v <= 9; v++ {
				// pairAt maps a (slot1, slot2) confinement to the first
				// line that showed it, offset by one so zero means unseen.
				var pairAt [Size * Size]int
				for li := 0; li < Size; li++ {
					s1, s2, n := -1, -1, 0
					for s := 0; s < Size && n <= 2; s++ {
						if m, ok := t.Get(lines[li][s]); ok && m.Has(v) {
							s1, s2 = s2, s
							n++
						}
					}
					if n != 2 {
						continue
					}
					key := s1*Size + s2
					if pairAt[key] == 0 {
						pairAt[key] = li + 1
						continue
					}
					la := pairAt[key] - 1
					for _, s := range [2]int{s1, s2} {
						for _, cell := range perp[s] {
							if cell == lines[la][s] || cell == lines[li][s] {
								continue
							}
							if m, ok := t.Get(cell); ok && m.Has(v) {
								if !yield(cell, MaskOf(v)) {
									return
								}
							}
						}
					}
					return
				}
			}
		}
	}
}
