package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	content := `project: ctle
copyright_holder: 2024 Ulrik Lindahl
source_dirs:
  - ctle
  - unit_tests
header_exts:
  - .h
`
	err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "ctle", cfg.Project)
	assert.Equal(t, "2024 Ulrik Lindahl", cfg.CopyrightHolder)
	assert.Equal(t, []string{"ctle", "unit_tests"}, cfg.SourceDirs)
	assert.Equal(t, []string{".h"}, cfg.HeaderExts)
	// unset fields keep the defaults
	assert.Equal(t, "MIT", cfg.LicenseType)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("project: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = Load(tmpDir)
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	want := Default()
	want.Project = "myproj"
	want.SourceDirs = []string{"lib"}
	require.NoError(t, want.Write(tmpDir))

	got, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// the config file belongs to the user, not the generator: stays writable
	info, err := os.Stat(filepath.Join(tmpDir, ConfigFileName))
	require.NoError(t, err)
	assert.NotEqual(t, os.FileMode(0), info.Mode().Perm()&0200)
}
