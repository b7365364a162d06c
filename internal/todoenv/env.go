// Package todoenv reads todolist settings from the environment.
package todoenv

import (
	"os"
	"strings"
)

// DataDirEnvVar overrides the configured data directory.
const DataDirEnvVar = "TODOLIST_DATA_DIR"

// DataDir returns the data directory set in the environment, or "".
func DataDir() string {
	return strings.TrimSpace(os.Getenv(DataDirEnvVar))
}
