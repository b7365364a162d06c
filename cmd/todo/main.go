// Package main implements the todo CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A local task list",
	Long: `A local task list.

Todos are stored in a data directory (--data-dir, then $TODOLIST_DATA_DIR,
then the config file, then ~/.local/state/todolist) and can be filtered,
sorted, and edited from the command line.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

var (
	rootDataDir  string
	rootLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Data directory (default from config, then ~/.local/state/todolist)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
