package puzzles

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

//go:embed boards/*.txt
var boards embed.FS

// Names lists the embedded sample puzzles in alphabetical order.
func Names() []string {
	entries, err := fs.Glob(boards, "boards/*.txt")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(path.Base(e), ".txt"))
	}
	slices.Sort(names)
	return names
}

// Load parses an embedded sample puzzle by name.
func Load(name string) (*domain.Board, error) {
	data, err := fs.ReadFile(boards, "boards/"+name+".txt")
	if err != nil {
		return nil, fmt.Errorf("sample puzzle %q: %w", name, err)
	}
	b, err := domain.ParseBoard(string(data))
	if err != nil {
		return nil, fmt.Errorf("sample puzzle %q: %w", name, err)
	}
	return b, nil
}
