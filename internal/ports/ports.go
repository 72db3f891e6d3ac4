package ports

import (
	"context"
	"time"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Assignments  int
	Eliminations int
	Duration     time.Duration
}

// Solver fills a board by logical deduction.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step for a board.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Close() error
}
