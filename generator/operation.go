package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cooolrik/stle/codegen"
)

// Operation represents a file system operation that can be validated and
// executed.
//
// Validate checks if the operation would succeed without executing it.
// Some operations may have side effects during validation (e.g., creating
// parent directories). force=true skips conflict checks.
//
// Execute performs the actual operation. This should only be called after
// Validate succeeds.
//
// Description returns a human-readable description for output
// (e.g., "Sync include/stle/_macros.inl (4123 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// SyncFileOp syncs generated content to a file using the idempotent write
// semantics of codegen.Sync: an existing byte-identical file is skipped,
// anything else is replaced and left read-only.
//
// Existing files are never treated as conflicts, since replacing stale
// generated output is the whole point. force has no effect here.
type SyncFileOp struct {
	Path    string // file path to sync
	Content []byte // file content (can be empty, must not be nil)

	result codegen.SyncResult
	done   bool
}

func (op *SyncFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	// Create parent directory (side effect, but idempotent)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *SyncFileOp) Execute(ctx context.Context) error {
	result, err := codegen.Sync(op.Path, op.Content)
	if err != nil {
		return err
	}
	op.result = result
	op.done = true
	return nil
}

func (op *SyncFileOp) Description() string {
	if op.done && op.result == codegen.Skipped {
		return fmt.Sprintf("Skipped %s (identical)", op.Path)
	}
	if op.done {
		return fmt.Sprintf("Wrote %s (%d bytes)", op.Path, len(op.Content))
	}
	return fmt.Sprintf("Sync %s (%d bytes)", op.Path, len(op.Content))
}

// Result reports what Execute did. Only meaningful after Execute succeeds.
func (op *SyncFileOp) Result() codegen.SyncResult {
	return op.result
}
