package solver

import (
	"iter"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// XYWing chains three two-candidate cells: a pivot seeing both wings,
// each wing sharing one candidate with the pivot, and the wings sharing
// their remaining candidate between themselves. Whichever value the
// first wing takes, one of the wings holds that shared candidate, so
// every cell seeing both wings drops it.
type XYWing struct{}

func (XYWing) Name() domain.Strategy { return domain.StrategyXYWing }

func (XYWing) Find(t *Table) iter.Seq2[int, Mask] {
	return func(yield func(int, Mask) bool) {
		for x := range t.Indices() {
			mx, _ := t.Get(x)
			if mx.Count() != 2 {
				continue
			}
			for _, pivot := range Peers(x) {
				mp, ok := t.Get(pivot)
				if !ok || mp.Count() != 2 {
					continue
				}
				want := mx ^ mp
				if want.Count() != 2 {
					continue
				}
				for _, y := range Peers(pivot) {
					if y == x || Sees(x, y) {
						continue
					}
					if my, ok := t.Get(y); !ok || my != want {
						continue
					}
					shared := mx & want
					for _, cell := range Peers(x) {
						if cell == pivot || !Sees(cell, y) {
							continue
						}
						m, ok := t.Get(cell)
						if !ok {
							continue
						}
						if bad := m & shared; bad != 0 {
							if !yield(cell, bad) {
								return
							}
						}
					}
				}
			}
		}
	}
}
