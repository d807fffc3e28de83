package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run the interactive counter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := tui.NewCounter(cfg.Counter.Seed, appLog)
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if fm, ok := final.(tui.CounterModel); ok {
			ui.Note(fmt.Sprintf("Count: %d", fm.Value()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(counterCmd)
	counterCmd.Flags().Int("seed", 0, "starting value (overrides counter.seed)")
}
