// Package config loads the server and CLI configuration from a YAML
// file. Every key has a default so the file is optional; command line
// flags override loaded values per invocation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CoolCat467/Sudoku-Solver/internal/domain"
)

// Config is the full configuration tree.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":8080".
	Listen string `yaml:"listen"`
	// LogLevel is one of debug|info|warn|error.
	LogLevel string `yaml:"log_level"`

	Storage StorageConfig `yaml:"storage"`
	Solver  SolverConfig  `yaml:"solver"`
	Watch   WatchConfig   `yaml:"watch"`
}

// StorageConfig selects and locates the puzzle store.
type StorageConfig struct {
	// Backend is "fs" (one JSON file per puzzle) or "badger".
	Backend string `yaml:"backend"`
	// Path is the data directory for the chosen backend.
	Path string `yaml:"path"`
}

// SolverConfig tunes the deduction pipeline.
type SolverConfig struct {
	// Without lists strategy names removed from the default pipeline.
	Without []string `yaml:"without"`
}

// WatchConfig tunes the step-by-step watch mode.
type WatchConfig struct {
	// Interval is the delay between deductions.
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:   ":8080",
		LogLevel: "info",
		Storage:  StorageConfig{Backend: "fs", Path: "./data"},
		Watch:    WatchConfig{Interval: 200 * time.Millisecond},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing
// file is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.Storage.Backend {
	case "fs", "badger":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	for _, name := range c.Solver.Without {
		if _, ok := domain.ParseStrategy(name); !ok {
			return fmt.Errorf("unknown strategy %q", name)
		}
	}
	if c.Watch.Interval < 0 {
		return fmt.Errorf("negative watch interval %s", c.Watch.Interval)
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// DisabledStrategies parses Solver.Without into domain strategies,
// skipping names that do not resolve.
func (c *Config) DisabledStrategies() []domain.Strategy {
	var out []domain.Strategy
	for _, name := range c.Solver.Without {
		if s, ok := domain.ParseStrategy(name); ok {
			out = append(out, s)
		}
	}
	return out
}
