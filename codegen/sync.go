package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// SyncResult reports what Sync did with the target file.
type SyncResult int

const (
	// Unsynced is the zero value. Sync never reports it without an error,
	// so a Written that was never assigned cannot be mistaken for a write.
	Unsynced SyncResult = iota
	// Written means the file was created or replaced.
	Written
	// Skipped means the file already held exactly this content and was
	// left untouched.
	Skipped
)

// String returns the result as a lowercase word.
func (r SyncResult) String() string {
	switch r {
	case Unsynced:
		return "unsynced"
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// readOnlyMode is the permission generated files are left in: readable by
// everyone, writable by no one.
const readOnlyMode os.FileMode = 0444

// Sync writes content to path only if it differs from what is already on
// disk. An existing byte-identical file is left untouched (mtime included)
// and the call reports Skipped.
//
// When the content differs, the existing file is made owner-writable and
// removed, parent directories are created as needed, and the new content is
// written and left read-only. The read-only mode marks the file as
// generated output; hand edits fail with a permission error instead of
// being silently overwritten later.
func Sync(path string, content []byte) (SyncResult, error) {
	existing, err := os.ReadFile(path)
	if err == nil {
		if bytes.Equal(existing, content) {
			return Skipped, nil
		}
		// restore the write bit so the old read-only file can be removed
		if err := os.Chmod(path, 0644); err != nil {
			return Unsynced, fmt.Errorf("failed to make %s writable: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return Unsynced, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Unsynced, fmt.Errorf("failed to read existing file %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Unsynced, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return Unsynced, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(path, readOnlyMode); err != nil {
		return Unsynced, fmt.Errorf("failed to mark %s read-only: %w", path, err)
	}
	return Written, nil
}

// WriteFile joins the accumulated lines and syncs them to path. The write
// is skipped when the file already holds identical content; see Sync.
//
// The builder is meant to be consumed exactly once; reusing it after
// WriteFile keeps appending to the same line sequence.
func (b *Builder) WriteFile(path string) (SyncResult, error) {
	return Sync(path, b.Bytes())
}
