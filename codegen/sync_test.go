package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncWritesReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h")

	result, err := Sync(path, []byte("int x;\n"))
	require.NoError(t, err)
	assert.Equal(t, Written, result)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int x;\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0444), info.Mode().Perm())
}

func TestSyncSkipsIdenticalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h")
	content := []byte("int x;\n")

	result, err := Sync(path, content)
	require.NoError(t, err)
	require.Equal(t, Written, result)

	before, err := os.Stat(path)
	require.NoError(t, err)

	// second run: identical content, no filesystem write
	result, err = Sync(path, content)
	require.NoError(t, err)
	assert.Equal(t, Skipped, result)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestSyncReplacesReadOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h")

	_, err := Sync(path, []byte("int x;\n"))
	require.NoError(t, err)

	// the previous run left the file read-only; a changed generation must
	// still replace it
	result, err := Sync(path, []byte("int y;\n"))
	require.NoError(t, err)
	assert.Equal(t, Written, result)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "int y;\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0444), info.Mode().Perm())
}

func TestSyncCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "include", "stle", "out.h")

	result, err := Sync(path, []byte("x\n"))
	require.NoError(t, err)
	assert.Equal(t, Written, result)
}

func TestSyncErrorReportsUnsynced(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// the parent "directory" is a regular file, so the write must fail
	result, err := Sync(filepath.Join(blocker, "out.h"), []byte("int x;\n"))
	require.Error(t, err)
	assert.Equal(t, Unsynced, result)
	assert.NotEqual(t, Written, result)
}

func TestSyncResultString(t *testing.T) {
	assert.Equal(t, "unsynced", Unsynced.String())
	assert.Equal(t, "written", Written.String())
	assert.Equal(t, "skipped", Skipped.String())
}

func buildHeader(t *testing.T) *Builder {
	t.Helper()
	b := New(nil)
	b.LicenseHeader(nil)
	token := b.BeginHeaderGuard("point.h", "stle")
	b.Line("")
	b.Line("struct point")
	b.Block(&BlockOptions{Semicolon: true}, func() {
		b.Line("int x;")
	})
	b.EndHeaderGuard(token)
	return b
}

// Two independent builder runs must produce byte-identical files, and the
// second sync of the same content must be a skip.
func TestWriteFileReproducible(t *testing.T) {
	tmpDir := t.TempDir()
	pathA := filepath.Join(tmpDir, "a", "point.h")
	pathB := filepath.Join(tmpDir, "b", "point.h")

	resultA, err := buildHeader(t).WriteFile(pathA)
	require.NoError(t, err)
	require.Equal(t, Written, resultA)

	resultB, err := buildHeader(t).WriteFile(pathB)
	require.NoError(t, err)
	require.Equal(t, Written, resultB)

	contentA, err := os.ReadFile(pathA)
	require.NoError(t, err)
	contentB, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, contentA, contentB)

	result, err := buildHeader(t).WriteFile(pathA)
	require.NoError(t, err)
	assert.Equal(t, Skipped, result)
}
