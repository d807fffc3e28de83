package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run [script.yaml | commands.txt | -]",
	Short: "Apply widget commands from a script or stdin",
	Long: `Runs add/done/rm/ls/inc/dec/count commands against one in-memory session.
A .yaml/.yml file is read as {counter_seed, steps}; anything else, including
stdin, is read as one command per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := cli.NewSession(cfg.Counter.Seed, cli.Options{Empty: cfg.Todo.Empty, Log: appLog})

		in, name := io.Reader(cmd.InOrStdin()), "-"
		if len(args) == 1 && args[0] != "-" {
			name = args[0]
			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		var code int
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			sc, err := cli.ParseScript(in)
			if err != nil {
				return err
			}
			code = s.RunScript(sc)
		default:
			var err error
			if code, err = s.RunLines(in); err != nil {
				return err
			}
		}
		appLog.Debug("script finished", "source", name, "code", code, "todos", len(s.Todos()))
		if code != 0 {
			return exitCode(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("seed", 0, "starting counter value (overrides counter.seed)")
}
