package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseBoard reads a board from text. Exactly 81 cell characters are
// expected: digits 1-9 for givens and any of '0', '.', '_' for empty
// cells. Whitespace, commas, brackets, and grid rules ('|', '+', '-')
// are ignored, so both 81-character lines and decorated multi-line
// layouts parse. Givens are marked fixed.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	i := 0
	for _, r := range s {
		var v uint8
		switch {
		case r >= '1' && r <= '9':
			v = uint8(r - '0')
		case r == '0' || r == '.' || r == '_':
			v = 0
		case unicode.IsSpace(r) || strings.ContainsRune(",|+-[]", r):
			continue
		default:
			return nil, fmt.Errorf("parse board: unexpected character %q", r)
		}
		if i >= 81 {
			return nil, fmt.Errorf("parse board: more than 81 cells")
		}
		b.Values[i/9][i%9] = v
		i++
	}
	if i != 81 {
		return nil, fmt.Errorf("parse board: got %d cells, want 81", i)
	}
	b.MarkGivens()
	return b, nil
}

// String renders the board as a sector-ruled ASCII grid with '.' for
// empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			sb.WriteByte(cellChar(b.Values[r][c]))
			if c != 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact renders the board as a single 81-character line.
func (b *Board) Compact() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sb.WriteByte(cellChar(b.Values[r][c]))
		}
	}
	return sb.String()
}

func cellChar(v uint8) byte {
	if v == 0 {
		return '.'
	}
	return '0' + v
}
