package solver

import (
	"iter"
	"slices"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// NakedPair finds two cells of a region holding the same two-candidate
// set and strips those candidates from the rest of the region.
type NakedPair struct{}

func (NakedPair) Name() domain.Strategy { return domain.StrategyNakedPair }

func (NakedPair) Find(t *Table) iter.Seq2[int, Mask] {
	return func(yield func(int, Mask) bool) {
		for idx := range t.Indices() {
			pair, _ := t.Get(idx)
			if pair.Count() != 2 {
				continue
			}
			for _, region := range peerGroups(idx) {
				twins := 0
				for _, p := range region {
					if m, ok := t.Get(p); ok && m == pair {
						twins++
					}
				}
				if twins != 1 {
					continue
				}
				for _, p := range region {
					m, ok := t.Get(p)
					if !ok || m == pair {
						continue
					}
					if bad := m & pair; bad != 0 {
						if !yield(p, bad) {
							return
						}
					}
				}
			}
		}
	}
}

// NakedSet generalizes naked pairs and triplets: when a group of cells
// in one region jointly holds exactly as many candidates as the group
// has cells, those candidates belong to the group and every other cell
// of the region drops them. The connected group around each cell is
// tried whole first, then 3- and 4-cell subsets of it.
type NakedSet struct{}

func (NakedSet) Name() domain.Strategy { return domain.StrategyNakedSet }

func (NakedSet) Find(t *Table) iter.Seq2[int, Mask] {
	return func(yield func(int, Mask) bool) {
		for idx := range t.Indices() {
			need, _ := t.Get(idx)
			if need.Count() < 2 {
				continue
			}
			for _, region := range regionGroups(idx) {
				var unsolved, connected []int
				for _, cell := range region {
					m, ok := t.Get(cell)
					if !ok {
						continue
					}
					unsolved = append(unsolved, cell)
					if m.Count() >= 2 && m&need != 0 {
						connected = append(connected, cell)
					}
				}
				if len(connected) < need.Count() {
					continue
				}

				union := Mask(0)
				for _, cell := range connected {
					m, _ := t.Get(cell)
					union |= m
				}
				if union.Count() == len(connected) {
					if !pruneOutside(t, unsolved, connected, union, yield) {
						return
					}
					continue
				}

				found, quit := false, false
				for size := 3; size <= 4 && !found && !quit; size++ {
					combinations(connected, size, func(group []int) bool {
						u := Mask(0)
						for _, cell := range group {
							m, _ := t.Get(cell)
							u |= m
							if u.Count() > size {
								return true
							}
						}
						if u.Count() != size {
							return true
						}
						found = true
						if !pruneOutside(t, unsolved, group, u, yield) {
							quit = true
						}
						return false // one set per region is enough
					})
				}
				if quit {
					return
				}
			}
		}
	}
}

// pruneOutside yields group's candidate union as an elimination for
// every unsolved region cell outside the group. Returns false when the
// consumer stops.
func pruneOutside(t *Table, unsolved, group []int, union Mask, yield func(int, Mask) bool) bool {
	for _, cell := range unsolved {
		if slices.Contains(group, cell) {
			continue
		}
		m, _ := t.Get(cell)
		if bad := m & union; bad != 0 {
			if !yield(cell, bad) {
				return false
			}
		}
	}
	return true
}

// combinations invokes fn with each size-k combination of cells until
// fn returns false.
func combinations(cells []int, k int, fn func([]int) bool) {
	sel := make([]int, 0, k)
	var walk func(start int) bool
	walk = func(start int) bool {
		if len(sel) == k {
			return fn(sel)
		}
		for i := start; i <= len(cells)-(k-len(sel)); i++ {
			sel = append(sel, cells[i])
			if !walk(i + 1) {
				return false
			}
			sel = sel[:len(sel)-1]
		}
		return true
	}
	walk(0)
}
