package solver

import (
	"iter"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// Strategy scans a candidate table and yields eliminations as
// (cell index, candidates to drop) pairs. Strategies never mutate the
// table themselves; the run applies each elimination as it is yielded,
// so later finds in the same sweep see the effect of earlier ones.
type Strategy interface {
	Name() domain.Strategy
	Find(t *Table) iter.Seq2[int, Mask]
}

// DefaultStrategies returns the standard pipeline in execution order.
// NakedSet covers pairs only when nothing else in the region shares
// their candidates, so NakedPair runs on its own as well.
func DefaultStrategies() []Strategy {
	return []Strategy{HiddenSingle{}, NakedPair{}, NakedSet{}, XWing{}, XYWing{}}
}

// StrategyByName maps a strategy name to its implementation.
func StrategyByName(name domain.Strategy) (Strategy, bool) {
	switch name {
	case domain.StrategyHiddenSingle:
		return HiddenSingle{}, true
	case domain.StrategyNakedPair:
		return NakedPair{}, true
	case domain.StrategyNakedSet:
		return NakedSet{}, true
	case domain.StrategyXWing:
		return XWing{}, true
	case domain.StrategyXYWing:
		return XYWing{}, true
	}
	return nil, false
}
