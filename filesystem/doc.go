// Package filesystem provides directory traversal with smart defaults for
// source trees.
//
// # Overview
//
// The checker walks C/C++ source trees while skipping build output,
// dependency caches and editor state:
//   - Smart directory traversal (skip vendor, build, CMakeFiles, .git)
//   - Pattern-based filtering (ignore *.tmp, backups, etc.)
//   - Extension-based source discovery with deterministic ordering
//
// # Usage
//
// Walk a directory with default ignores:
//
//	err := filesystem.Walk(".", filesystem.WalkOptions{}, func(path string, info os.FileInfo) error {
//	    fmt.Println(path)
//	    return nil
//	})
//
// Collect all C/C++ sources:
//
//	files, err := filesystem.SourceFiles(".", []string{".h", ".cpp", ".inl"}, filesystem.WalkOptions{})
package filesystem
