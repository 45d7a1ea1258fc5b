package generator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Cooolrik/stle/codegen"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Writer io.Writer // Where to write output (defaults to os.Stdout)

	// Report, when set, replaces the Writer lines for sync operations so
	// the CLI can style per-file results. Dry runs still go to Writer.
	Report func(path string, result codegen.SyncResult)
}

// Stats summarizes what an Execute run did.
type Stats struct {
	Written int // files created or replaced
	Skipped int // files already up to date
}

// Execute runs operations with validation. All operations are validated
// before any of them executes, so a batch with a bad operation leaves the
// tree untouched. Returns counts of written and skipped files.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) (Stats, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	var stats Stats

	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return stats, fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Execute or report
	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return stats, fmt.Errorf("execution failed: %w", err)
		}

		sop, isSync := op.(*SyncFileOp)
		skipped := isSync && sop.Result() == codegen.Skipped
		if skipped {
			stats.Skipped++
		} else {
			stats.Written++
		}

		if isSync && opts.Report != nil {
			opts.Report(sop.Path, sop.Result())
			continue
		}
		marker := "✓"
		if skipped {
			marker = "-"
		}
		fmt.Fprintf(opts.Writer, "%s %s\n", marker, op.Description())
	}

	return stats, nil
}
