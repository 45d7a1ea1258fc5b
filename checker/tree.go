package checker

import (
	"os"
	"path/filepath"

	"github.com/Cooolrik/stle/filesystem"
	"github.com/Cooolrik/stle/project"
)

// CheckTree checks every source file under the project's configured source
// directories (relative to root) against its header rules. Source
// directories that do not exist are skipped. Violations come back sorted
// by path, matching filesystem.SourceFiles ordering.
func CheckTree(root string, cfg project.Config) ([]Violation, error) {
	files, err := treeFiles(root, cfg)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for _, path := range files {
		v, err := CheckFile(path, HeaderRules(path, cfg))
		if err != nil {
			return nil, err
		}
		violations = append(violations, v...)
	}
	return violations, nil
}

// FixTree rewrites every non-conforming source file under the project's
// source directories. The confirm callback decides per file whether to
// apply the fix (pass nil to fix unconditionally). Returns the paths that
// were rewritten and the violations left in files the callback declined.
func FixTree(root string, cfg project.Config, confirm func(path string) bool) ([]string, []Violation, error) {
	files, err := treeFiles(root, cfg)
	if err != nil {
		return nil, nil, err
	}

	var fixed []string
	var remaining []Violation
	for _, path := range files {
		rules := HeaderRules(path, cfg)
		v, err := CheckFile(path, rules)
		if err != nil {
			return nil, nil, err
		}
		if len(v) == 0 {
			continue
		}
		if confirm != nil && !confirm(path) {
			remaining = append(remaining, v...)
			continue
		}
		changed, err := FixFile(path, rules)
		if err != nil {
			return nil, nil, err
		}
		if changed {
			fixed = append(fixed, path)
		}
	}
	return fixed, remaining, nil
}

func treeFiles(root string, cfg project.Config) ([]string, error) {
	exts := append(append([]string{}, cfg.HeaderExts...), cfg.SourceExts...)

	var files []string
	for _, dir := range cfg.SourceDirs {
		dirPath := filepath.Join(root, dir)
		if _, err := os.Stat(dirPath); os.IsNotExist(err) {
			continue
		}
		found, err := filesystem.SourceFiles(dirPath, exts, filesystem.WalkOptions{})
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}
