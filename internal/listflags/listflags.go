// Package listflags holds flags shared by listing commands.
package listflags

import "github.com/spf13/cobra"

// AddAllFlag adds an --all flag that widens a listing to every status.
// It conflicts with an explicit --status.
func AddAllFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().BoolP("all", "a", false, "Include completed todos (same as --status all)")
	} else {
		cmd.Flags().BoolVarP(target, "all", "a", false, "Include completed todos (same as --status all)")
	}
	if cmd.Flags().Lookup("status") != nil {
		cmd.MarkFlagsMutuallyExclusive("all", "status")
	}
}
