package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CoolCat467/Sudoku-Solver/internal/tui"
)

var (
	watchInterval time.Duration
	watchSample   string

	watchCmd = &cobra.Command{
		Use:   "watch [file]",
		Short: "Watch the engine solve one deduction at a time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "delay between deductions (default from config)")
	watchCmd.Flags().StringVar(&watchSample, "sample", "", "watch an embedded sample puzzle")
}

func runWatch(cmd *cobra.Command, args []string) error {
	b, err := readBoard(cmd, args, watchSample)
	if err != nil {
		return err
	}
	interval := cfg.Watch.Interval
	if cmd.Flags().Changed("interval") {
		interval = watchInterval
	}
	m, err := tui.NewModel(b, newEngine(), interval)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
