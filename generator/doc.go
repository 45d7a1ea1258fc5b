// Package generator runs file-producing operations with validation and
// dry-run support.
//
// Generators build content (usually with codegen.Builder) and describe the
// files they want on disk as a slice of Operations. Execute validates the
// whole batch before touching the filesystem, then performs each operation
// and reports what it did:
//
//	ops := []generator.Operation{
//	    &generator.SyncFileOp{Path: "include/stle/_macros.inl", Content: macros},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: dryRun})
//
// SyncFileOp writes through codegen.Sync, so re-running a generator against
// an unchanged tree performs no writes at all and leaves timestamps intact.
package generator
