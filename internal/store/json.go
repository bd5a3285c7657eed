// Package store persists each entity type as a single JSON document on
// disk. Documents are fully loaded and fully rewritten on every
// mutation; a missing, empty or malformed file loads as the caller's
// fallback value instead of an error. There is no locking: two
// concurrent writers to the same document can interleave their
// read-modify-write cycles and one update can be lost.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the JSON document at path into a value of type T.
// Any failure (missing file, empty file, unreadable file, content that
// does not unmarshal into T) yields the fallback value. A document
// holding the literal null also yields the fallback: it unmarshals
// cleanly but would hand callers a nil slice or map.
func Load[T any](path string, fallback T) T {
	b, err := os.ReadFile(path)
	if err != nil || len(b) == 0 {
		return fallback
	}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return fallback
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return fallback
	}
	return v
}

// Save rewrites the whole document at path.
func Save(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EnsureFile writes the initial value to path when the file is missing
// or empty, so later loads see a well-formed document.
func EnsureFile(path string, initial any) error {
	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return Save(path, initial)
}
