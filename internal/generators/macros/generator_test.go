package macros

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cooolrik/stle/generator"
	"github.com/Cooolrik/stle/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctleConfig() project.Config {
	cfg := project.Default()
	cfg.Project = "ctle"
	cfg.CopyrightHolder = "2024 Ulrik Lindahl"
	cfg.LicenseLink = "https://github.com/Cooolrik/ctle/blob/main/LICENSE"
	return cfg
}

func render(t *testing.T, g *Generator) (string, string) {
	t.Helper()
	ops, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, ops, 2)

	defs := ops[0].(*generator.SyncFileOp)
	undefs := ops[1].(*generator.SyncFileOp)
	assert.Equal(t, "_macros.inl", filepath.Base(defs.Path))
	assert.Equal(t, "_undef_macros.inl", filepath.Base(undefs.Path))
	return string(defs.Content), string(undefs.Content)
}

func TestGenerateMacros(t *testing.T) {
	defs, undefs := render(t, New(ctleConfig(), "include/ctle"))

	assert.True(t, strings.HasPrefix(defs, "// ctle Copyright (c) 2024 Ulrik Lindahl\n"))
	assert.Contains(t, defs, "#define _CTLE_MACROS_INCLUDED")
	assert.Contains(t, defs, "#define _CTLE_FUNCTION_SIGNATURE __FUNCSIG__")
	assert.Contains(t, defs, "#define _CTLE_STRINGIZE(x) _CTLE_STRINGIZE_DETAIL(x)")
	assert.Contains(t, defs, "#define ctLogError ctLogLevel( error )")
	assert.Contains(t, defs, "#define ctStatusCall( s )\\")

	// every defined macro is removed again
	assert.Contains(t, undefs, "#undef _CTLE_MACROS_INCLUDED")
	assert.Contains(t, undefs, "#undef ctLogError")
	assert.Contains(t, undefs, "#undef ctStatusCall")
	assert.Contains(t, undefs, "#undef ctSanityCheck")
}

func TestGenerateUsesProjectPrefix(t *testing.T) {
	cfg := project.Default() // project "stle"
	defs, undefs := render(t, New(cfg, "include/stle"))

	assert.Contains(t, defs, "#define _STLE_MACROS_INCLUDED")
	assert.Contains(t, defs, "#define stLogError stLogLevel( error )")
	assert.Contains(t, undefs, "#undef stLogError")
}

func TestGenerateExplicitPrefix(t *testing.T) {
	g := New(project.Default(), "include/stle")
	g.Prefix = "st"
	defs, _ := render(t, g)

	assert.Contains(t, defs, "#define stValidate( statement , error_code_on_error )")
}

func TestGenerateContinuationLines(t *testing.T) {
	defs, _ := render(t, New(ctleConfig(), "include/ctle"))

	// multi-line macro bodies are backslash-continued and tab-indented
	assert.Contains(t, defs, "#define ctLogLevel( msg_level )\\\n\tif( ctle::log_level::msg_level <= ctle::get_global_log_level() ) {\\\n")
}

func TestGenerateEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	g := New(ctleConfig(), tmpDir)

	ops, err := g.Generate()
	require.NoError(t, err)

	var buf strings.Builder
	stats, err := generator.Execute(context.Background(), ops, generator.ExecuteOptions{Writer: &buf})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Written)

	// generated output is read-only on disk
	info, err := os.Stat(filepath.Join(tmpDir, "_macros.inl"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0444), info.Mode().Perm())

	// a second run is a full skip
	ops, err = New(ctleConfig(), tmpDir).Generate()
	require.NoError(t, err)
	stats, err = generator.Execute(context.Background(), ops, generator.ExecuteOptions{Writer: &buf})
	require.NoError(t, err)
	assert.Equal(t, generator.Stats{Skipped: 2}, stats)
}
