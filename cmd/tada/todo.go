package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"todos"},
	Short:   "Run the interactive todo list",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := tui.TodoOptions{
			Title:       cfg.Todo.Title,
			Placeholder: cfg.Todo.Placeholder,
			Empty:       cfg.Todo.Empty,
			AddLabel:    cfg.Todo.AddLabel,
			DeleteLabel: cfg.Todo.DeleteLabel,
			CharLimit:   cfg.Todo.CharLimit,
		}
		final, err := tea.NewProgram(tui.NewTodoList(opts, nil, appLog), tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if fm, ok := final.(tui.TodoListModel); ok {
			done, pending := model.Stats(fm.Todos())
			ui.Note(fmt.Sprintf("%d done, %d pending (not saved)", done, pending))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todoCmd)
}
