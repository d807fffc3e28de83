package main

import (
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Filled by the root pre-run hook before any subcommand runs.
var (
	cfg      config.Config
	appLog   = logging.NewNop()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "tada",
	Short: "Terminal counter and todo list widgets",
	Long: `tada hosts two small stateful widgets, a counter and a todo list,
plus a script driver that applies the same operations non-interactively.
Nothing is saved between runs.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		c, err := config.Load(path, cmd.Flags())
		if err != nil {
			return err
		}
		if err := ui.SetTheme(c.UI.Theme); err != nil {
			return err
		}
		level, err := logging.ParseLevel(c.Log.Level)
		if err != nil {
			return err
		}
		l, closer, err := logging.Open(c.Log.File, level)
		if err != nil {
			return err
		}
		cfg, appLog, closeLog = c, l, closer
		appLog.Debug("config loaded", "theme", c.UI.Theme, "counter_seed", c.Counter.Seed)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/tada/config.toml)")
	rootCmd.PersistentFlags().String("theme", "classic", "output theme: classic, neon or mono")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "append logs to this file (off when empty)")
}
