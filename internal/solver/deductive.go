package solver

import (
	"context"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/ports"
)

// Deductive adapts Engine to ports.Solver. Unlike Engine.Solve it never
// mutates the caller's board, and it honors context cancellation
// between deductions.
type Deductive struct {
	engine *Engine
}

func NewDeductive(opts ...Option) *Deductive {
	return &Deductive{engine: New(opts...)}
}

func (d *Deductive) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	out := b.Clone()
	run, err := d.engine.Run(out)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	for run.Next() {
		if err := ctx.Err(); err != nil {
			return nil, portStats(run.Stats()), err
		}
	}
	if err := run.Err(); err != nil {
		return nil, portStats(run.Stats()), err
	}
	return out, portStats(run.Stats()), nil
}

func portStats(s Stats) ports.Stats {
	n := 0
	for _, e := range s.Eliminations {
		n += e
	}
	return ports.Stats{Assignments: s.Assignments, Eliminations: n, Duration: s.Duration}
}
