package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckLinesExactMatch(t *testing.T) {
	lines := []string{"// header", "#pragma once"}
	rules := []LineRule{
		{Line: 1, Fix: "// header"},
		{Line: 2, Fix: "#pragma once"},
	}

	violations, err := CheckLines("x.h", lines, rules)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheckLinesReportsMismatch(t *testing.T) {
	lines := []string{"// wrong"}
	rules := []LineRule{{Line: 1, Fix: "// right"}}

	violations, err := CheckLines("x.h", lines, rules)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "x.h", violations[0].Path)
	assert.Equal(t, 1, violations[0].Line)
	assert.Equal(t, "// wrong", violations[0].Got)
	assert.Equal(t, "// right", violations[0].Want)
}

func TestCheckLinesPattern(t *testing.T) {
	rules := []LineRule{{
		Line:    1,
		Pattern: `// proj Copyright \(c\) \d{4} Someone`,
		Fix:     "// proj Copyright (c) 2026 Someone",
	}}

	// an older year still conforms
	violations, err := CheckLines("x.h", []string{"// proj Copyright (c) 2019 Someone"}, rules)
	require.NoError(t, err)
	assert.Empty(t, violations)

	// the pattern must match the whole line
	violations, err = CheckLines("x.h", []string{"// proj Copyright (c) 2019 Someone Else"}, rules)
	require.NoError(t, err)
	assert.Len(t, violations, 1)
}

func TestCheckLinesBadPattern(t *testing.T) {
	_, err := CheckLines("x.h", []string{"x"}, []LineRule{{Line: 1, Pattern: "(", Fix: "x"}})
	assert.Error(t, err)
}

func TestCheckLinesLastLine(t *testing.T) {
	lines := []string{"first", "middle", "#endif//_X_H_"}
	rules := []LineRule{{Line: -1, Fix: "#endif//_X_H_"}}

	violations, err := CheckLines("x.h", lines, rules)
	require.NoError(t, err)
	assert.Empty(t, violations)

	rules[0].Fix = "#endif//_OTHER_H_"
	violations, err = CheckLines("x.h", lines, rules)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, 3, violations[0].Line)
}

func TestCheckLinesMissingLine(t *testing.T) {
	violations, err := CheckLines("x.h", []string{"only"}, []LineRule{{Line: 5, Fix: "#define X"}})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, 5, violations[0].Line)
	assert.Equal(t, "", violations[0].Got)
}

func TestCheckFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "x.h", "// right\n")

	violations, err := CheckFile(path, []LineRule{{Line: 1, Fix: "// right"}})
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheckFileMissing(t *testing.T) {
	_, err := CheckFile(filepath.Join(t.TempDir(), "nope.h"), nil)
	assert.Error(t, err)
}

func TestFixFileRewritesBadLines(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "x.h", "// wrong\nbody\n#endif//_STALE_H_\n")

	rules := []LineRule{
		{Line: 1, Fix: "// right"},
		{Line: -1, Fix: "#endif//_X_H_"},
	}
	changed, err := FixFile(path, rules)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "// right\nbody\n#endif//_X_H_\n", string(data))

	// conforming file: second fix is a no-op
	changed, err = FixFile(path, rules)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFixFileAppendsMissingEndGuard(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "x.h", "// right\nint x;\n")

	changed, err := FixFile(path, []LineRule{{Line: -1, Fix: "#endif//_X_H_"}})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// "int x;" is real content, so the guard is appended rather than
	// overwriting it
	assert.Equal(t, "// right\nint x;\n#endif//_X_H_\n", string(data))
}

func TestFixFilePadsMissingLines(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "x.h", "// header\n")

	changed, err := FixFile(path, []LineRule{{Line: 3, Fix: "#pragma once"}})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "// header\n\n#pragma once\n", string(data))
}

func TestFixFileKeepsPermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "x.h", "// wrong\n")
	require.NoError(t, os.Chmod(path, 0600))

	changed, err := FixFile(path, []LineRule{{Line: 1, Fix: "// right"}})
	require.NoError(t, err)
	require.True(t, changed)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
