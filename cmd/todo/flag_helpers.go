package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

// resolveDescriptionFlag replaces a "-" description with the contents of r.
func resolveDescriptionFlag(cmd *cobra.Command, description *string, r io.Reader) error {
	if !cmd.Flags().Changed("description") {
		return nil
	}
	value, err := resolveDescriptionFromStdin(*description, r)
	if err != nil {
		return err
	}
	*description = value
	return nil
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}
