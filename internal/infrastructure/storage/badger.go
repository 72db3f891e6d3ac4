package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

const puzzlePrefix = "puzzle/"

// BadgerConfig holds the options for the embedded store.
type BadgerConfig struct {
	// Path is the directory for database files. Ignored in memory.
	Path string
	// InMemory drops persistence entirely; meant for tests.
	InMemory bool
	// SyncWrites makes every write hit disk before returning.
	SyncWrites bool
	// Logger receives badger's internal log lines. Nil silences them.
	Logger *slog.Logger
}

// DefaultBadgerConfig returns the persistent production settings.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{Path: path, SyncWrites: true}
}

// InMemoryBadgerConfig returns settings for tests: no disk, no sync.
func InMemoryBadgerConfig() BadgerConfig {
	return BadgerConfig{InMemory: true}
}

// badgerLogger adapts slog to badger's Logger interface.
type badgerLogger struct{ l *slog.Logger }

func (b badgerLogger) Errorf(format string, args ...any)   { b.l.Error(fmt.Sprintf(format, args...)) }
func (b badgerLogger) Warningf(format string, args ...any) { b.l.Warn(fmt.Sprintf(format, args...)) }
func (b badgerLogger) Infof(format string, args ...any)    { b.l.Info(fmt.Sprintf(format, args...)) }
func (b badgerLogger) Debugf(format string, args ...any)   { b.l.Debug(fmt.Sprintf(format, args...)) }

// Badger stores puzzles under puzzle/<id> keys.
type Badger struct{ db *badger.DB }

func NewBadger(cfg BadgerConfig) (*Badger, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger: path required for a persistent store")
	}
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &Badger{db: db}, nil
}

func puzzleKey(id string) []byte { return []byte(puzzlePrefix + id) }

func (s *Badger) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(puzzleKey(p.ID), data)
	})
}

func (s *Badger) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out domain.Puzzle
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(puzzleKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return os.ErrNotExist
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List iterates the puzzle/ prefix. Badger keys are ordered, so the
// result is sorted by ID like the filesystem store.
func (s *Badger) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	prefix := []byte(puzzlePrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m domain.PuzzleMeta
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			})
			if err != nil || m.ID == "" {
				continue
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Badger) Close() error { return s.db.Close() }
