package domain

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a deduction suggestion for the UI.
type Hint struct {
	Message  string      `json:"message,omitempty"`
	Cells    []CellCoord `json:"cells,omitempty"`
	Value    uint8       `json:"value,omitempty"`
	Strategy Strategy    `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// EmptyCells counts cells still holding zero.
func (b *Board) EmptyCells() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// MarkGivens records every nonzero cell as fixed.
func (b *Board) MarkGivens() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
}
