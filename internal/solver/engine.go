package solver

import (
	"fmt"
	"time"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// Engine solves boards by candidate elimination and the configured
// deduction strategies alone; it never guesses or searches.
type Engine struct {
	strategies []Strategy
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategies replaces the default strategy pipeline. Order is the
// order strategies run each cycle.
func WithStrategies(ss ...Strategy) Option {
	return func(e *Engine) { e.strategies = ss }
}

// WithoutStrategies drops named strategies from the pipeline.
func WithoutStrategies(names ...domain.Strategy) Option {
	return func(e *Engine) {
		kept := e.strategies[:0:0]
		for _, s := range e.strategies {
			drop := false
			for _, name := range names {
				if s.Name() == name {
					drop = true
					break
				}
			}
			if !drop {
				kept = append(kept, s)
			}
		}
		e.strategies = kept
	}
}

// New builds an engine running the default pipeline unless options say
// otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{strategies: DefaultStrategies()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run starts a deduction pass over b. With no positions, every empty
// cell is worked in raster order; otherwise only the given flat indices
// are. The returned cursor writes assignments into b as it advances.
func (e *Engine) Run(b *domain.Board, positions ...int) (*Run, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b.Values[r][c]; v > 9 {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGrid, r, c, v)
			}
		}
	}
	if len(positions) == 0 {
		for idx := 0; idx < Cells; idx++ {
			row, col := Coord(idx)
			if b.Values[row][col] == 0 {
				positions = append(positions, idx)
			}
		}
	} else {
		for _, idx := range positions {
			if idx < 0 || idx >= Cells {
				return nil, fmt.Errorf("%w: position %d out of range", ErrInvalidGrid, idx)
			}
		}
	}

	r := &Run{
		board:      b,
		table:      &Table{},
		strategies: e.strategies,
		started:    time.Now(),
	}
	r.stats.Eliminations = make(map[domain.Strategy]int)
	for _, idx := range positions {
		if r.table.Has(idx) {
			continue
		}
		r.table.put(idx, PossibleMask(b, idx))
		r.queue = append(r.queue, idx)
	}
	r.timesLeft = len(r.queue)
	if len(r.queue) == 0 {
		r.done = true
	}
	return r, nil
}

// Solve drains a run over every empty cell, mutating b in place. The
// returned stats cover the whole run even when it fails.
func (e *Engine) Solve(b *domain.Board) (Stats, error) {
	run, err := e.Run(b)
	if err != nil {
		return Stats{}, err
	}
	for run.Next() {
	}
	return run.Stats(), run.Err()
}

// Strategies returns the pipeline the engine runs.
func (e *Engine) Strategies() []Strategy {
	out := make([]Strategy, len(e.strategies))
	copy(out, e.strategies)
	return out
}
