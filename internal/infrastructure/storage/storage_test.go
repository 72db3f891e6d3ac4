package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
	"github.com/CoolCat467/Sudoku-Solver/internal/ports"
)

// openStores returns one instance of every backend, pre-wired for the
// test lifetime.
func openStores(t *testing.T) map[string]ports.Storage {
	t.Helper()
	db, err := NewBadger(InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return map[string]ports.Storage{
		"fs":     NewFS(t.TempDir()),
		"badger": db,
	}
}

func samplePuzzle(id, name string) *domain.Puzzle {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[8][8] = 9
	b.MarkGivens()
	return &domain.Puzzle{ID: id, Board: b, Name: name, CreatedAt: 1724572800}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := samplePuzzle("p1", "corner pair")
			require.NoError(t, st.Save(ctx, in))

			out, err := st.Load(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, in, out)
			assert.True(t, out.Board.Fixed[0][0])
			assert.False(t, out.Board.Fixed[0][1])
		})
	}
}

func TestLoadMissing(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Load(context.Background(), "no-such-id")
			assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
		})
	}
}

func TestSaveRequiresID(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			assert.Error(t, st.Save(ctx, nil))
			assert.Error(t, st.Save(ctx, &domain.Puzzle{}))
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, st.Save(ctx, samplePuzzle("p1", "first")))
			require.NoError(t, st.Save(ctx, samplePuzzle("p1", "second")))

			out, err := st.Load(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, "second", out.Name)

			metas, err := st.List(ctx)
			require.NoError(t, err)
			assert.Len(t, metas, 1)
		})
	}
}

func TestListSortedByID(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, id := range []string{"charlie", "alpha", "bravo"} {
				require.NoError(t, st.Save(ctx, samplePuzzle(id, "puzzle "+id)))
			}
			metas, err := st.List(ctx)
			require.NoError(t, err)
			require.Len(t, metas, 3)
			assert.Equal(t, "alpha", metas[0].ID)
			assert.Equal(t, "bravo", metas[1].ID)
			assert.Equal(t, "charlie", metas[2].ID)
			assert.Equal(t, "puzzle alpha", metas[0].Name)
			assert.Equal(t, int64(1724572800), metas[0].CreatedAt)
		})
	}
}

func TestListEmpty(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			metas, err := st.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, metas)
		})
	}
}

func TestFSListMissingDir(t *testing.T) {
	st := NewFS(filepath.Join(t.TempDir(), "never-created"))
	metas, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestFSLayout(t *testing.T) {
	dir := t.TempDir()
	st := NewFS(dir)
	require.NoError(t, st.Save(context.Background(), samplePuzzle("p1", "on disk")))

	data, err := os.ReadFile(filepath.Join(dir, "p1.json"))
	require.NoError(t, err)
	var p domain.Puzzle
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, uint8(5), p.Board.Values[0][0])
}

func TestFSListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	st := NewFS(dir)
	require.NoError(t, st.Save(context.Background(), samplePuzzle("p1", "kept")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

	metas, err := st.List(context.Background())
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "p1", metas[0].ID)
}

func TestNewBadgerRequiresPath(t *testing.T) {
	_, err := NewBadger(BadgerConfig{})
	assert.Error(t, err)
}

func TestBadgerPersists(t *testing.T) {
	dir := t.TempDir()
	st, err := NewBadger(DefaultBadgerConfig(dir))
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), samplePuzzle("p1", "durable")))
	require.NoError(t, st.Close())

	st, err = NewBadger(DefaultBadgerConfig(dir))
	require.NoError(t, err)
	defer st.Close()
	out, err := st.Load(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "durable", out.Name)
}
