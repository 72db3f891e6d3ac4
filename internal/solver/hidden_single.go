package solver

import (
	"iter"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// HiddenSingle finds cells holding the only place a candidate can go
// within a row, column, or box, and strips their other candidates so
// the cell resolves.
type HiddenSingle struct{}

func (HiddenSingle) Name() domain.Strategy { return domain.StrategyHiddenSingle }

func (HiddenSingle) Find(t *Table) iter.Seq2[int, Mask] {
	return func(yield func(int, Mask) bool) {
		for idx := range t.Indices() {
			own, _ := t.Get(idx)
			for _, region := range peerGroups(idx) {
				rest := Mask(0)
				for _, p := range region {
					if m, ok := t.Get(p); ok {
						rest |= m
					}
				}
				alone := own &^ rest
				if alone.Count() == 1 && own != alone {
					if !yield(idx, own&^alone) {
						return
					}
					break
				}
			}
		}
	}
}
