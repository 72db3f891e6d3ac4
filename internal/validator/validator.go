package validator

import (
	"context"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// FastValidator flags rule violations with one bitmask pass per row,
// column, and box. A duplicate is reported at its second occurrence in
// the scan; a cell conflicting in several regions is reported once.
// Values outside 1..9 are conflicts at their own cell. Empty cells
// never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	seen := make(map[domain.CellCoord]bool)
	conf := make([]domain.CellCoord, 0, 8)
	flag := func(r, c int) {
		cc := domain.CellCoord{Row: r, Col: c}
		if !seen[cc] {
			seen[cc] = true
			conf = append(conf, cc)
		}
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				flag(r, c)
			}
		}
	}

	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 || val > 9 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				flag(r, c)
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val == 0 || val > 9 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				flag(r, c)
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val == 0 || val > 9 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						flag(r, c)
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
