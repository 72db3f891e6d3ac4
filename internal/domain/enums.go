package domain

import "strings"

// Strategy names a deduction technique the solving engine can run.
type Strategy string

const (
	StrategyHiddenSingle Strategy = "hidden-single"
	StrategyNakedPair    Strategy = "naked-pair"
	StrategyNakedSet     Strategy = "naked-set" // naked pairs/triplets/quads
	StrategyXWing        Strategy = "x-wing"
	StrategyXYWing       Strategy = "xy-wing"

	// StrategyNakedSingle labels hints for cells with one candidate
	// left. The engine resolves those without running a strategy, so
	// it is not part of KnownStrategies.
	StrategyNakedSingle Strategy = "naked-single"
)

// KnownStrategies lists every strategy the engine implements.
func KnownStrategies() []Strategy {
	return []Strategy{
		StrategyHiddenSingle,
		StrategyNakedPair,
		StrategyNakedSet,
		StrategyXWing,
		StrategyXYWing,
	}
}

// ParseStrategy maps a user-facing name to a known Strategy.
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyHiddenSingle:
		return StrategyHiddenSingle, true
	case StrategyNakedPair:
		return StrategyNakedPair, true
	case StrategyNakedSet:
		return StrategyNakedSet, true
	case StrategyXWing:
		return StrategyXWing, true
	case StrategyXYWing:
		return StrategyXYWing, true
	}
	return "", false
}
