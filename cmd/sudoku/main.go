// Command sudoku solves, validates, and serves 9x9 puzzles using pure
// logical deduction.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CoolCat467/Sudoku-Solver/internal/config"
	"github.com/CoolCat467/Sudoku-Solver/internal/solver"
)

var (
	cfgPath  string
	logLevel string
	without  []string

	cfg    config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "sudoku",
		Short: "Solve sudoku puzzles by pure logical deduction",
		Long: `sudoku fills 9x9 grids using candidate elimination and deduction
strategies (hidden singles, naked sets, X-Wing, XY-Wing). It never
guesses: a puzzle the strategies cannot finish is reported with the
exact cells where deduction stopped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("without") {
				cfg.Solver.Without = without
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
			slog.SetDefault(logger)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringSliceVar(&without, "without", nil, "strategies to drop from the pipeline")
	rootCmd.AddCommand(solveCmd, watchCmd, validateCmd, serveCmd)
}

// engineOptions translates the config into engine options.
func engineOptions() []solver.Option {
	if names := cfg.DisabledStrategies(); len(names) > 0 {
		return []solver.Option{solver.WithoutStrategies(names...)}
	}
	return nil
}

func newEngine() *solver.Engine {
	return solver.New(engineOptions()...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(1)
	}
}
