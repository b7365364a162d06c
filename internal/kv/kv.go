// Package kv provides the durable local key-value store todo data lives in.
//
// Values are opaque strings. FileStore keeps one file per key in a directory,
// the on-disk analogue of browser local storage; MemoryStore backs tests.
package kv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned for keys that cannot be used as a file name.
var ErrInvalidKey = errors.New("invalid key")

// Store reads and writes string values by key.
type Store interface {
	// Get returns the value stored under key. ok is false when no value exists.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// SetMany stores every entry as one operation.
	SetMany(entries map[string]string) error
}

// ValidateKey checks that key is usable by every Store implementation.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.HasPrefix(key, ".") {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidKey, key)
	}
	if strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
