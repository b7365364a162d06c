package main

import (
	"fmt"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/todo"
	"github.com/spf13/cobra"
)

var darkModeCmd = &cobra.Command{
	Use:   "dark-mode [on|off|toggle]",
	Short: "Show or change the display mode",
	Long: `Show or change the display mode.

The mode picks the color palette used for categories, priorities, and due
dates. When it has never been set it follows the terminal background.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE:      runDarkMode,
}

func init() {
	rootCmd.AddCommand(darkModeCmd)
}

func runDarkMode(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}

	dark := session.DarkMode()
	if len(args) == 1 {
		switch internalstrings.NormalizeLowerTrimSpace(args[0]) {
		case "on", "dark", "true":
			err = session.SetDarkMode(true)
			dark = true
		case "off", "light", "false":
			err = session.SetDarkMode(false)
			dark = false
		case "toggle":
			dark, err = session.ToggleDarkMode()
		default:
			return fmt.Errorf("invalid display mode %q: valid values are on, off, toggle", args[0])
		}
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Dark mode %s\n", onOff(dark))
	return nil
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}

// themeFor returns the palette for the session's stored display mode.
func themeFor(session *todo.Session) ui.Theme {
	return ui.NewTheme(session.DarkMode())
}
