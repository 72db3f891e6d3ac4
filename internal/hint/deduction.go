package hint

import (
	"context"
	"fmt"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
)

// Deduction suggests the next cell the engine would fill: a naked
// single straight from the candidate table, or failing that the first
// hidden single the engine strategy finds. Harder deductions are not
// revealed; a hint should nudge, not solve.
type Deduction struct{}

func NewDeduction() *Deduction { return &Deduction{} }

func (h *Deduction) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	tbl := solver.NewTable(b)

	for idx := range tbl.Indices() {
		m, _ := tbl.Get(idx)
		if v := m.Single(); v != 0 {
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits here", v),
				Cells:    []domain.CellCoord{coord(idx)},
				Value:    v,
				Strategy: domain.StrategyNakedSingle,
			}, true, nil
		}
	}

	for idx, bad := range (solver.HiddenSingle{}).Find(tbl) {
		m, _ := tbl.Get(idx)
		v := (m &^ bad).Single()
		return domain.Hint{
			Message:  fmt.Sprintf("Hidden single: %d fits nowhere else in one of this cell's regions", v),
			Cells:    []domain.CellCoord{coord(idx)},
			Value:    v,
			Strategy: domain.StrategyHiddenSingle,
		}, true, nil
	}

	return domain.Hint{}, false, nil
}

func coord(idx int) domain.CellCoord {
	row, col := solver.Coord(idx)
	return domain.CellCoord{Row: row, Col: col}
}
