// Package ids generates todo identifiers and computes the short prefixes used
// to refer to them on the command line.
package ids

import "github.com/google/uuid"

// New returns a fresh random (version 4) UUID in its canonical lowercase form.
func New() string {
	return uuid.NewString()
}
