package codegen

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LicenseConfig holds the values stamped into generated license headers.
// The zero value of any field falls back to the matching DefaultLicense
// field, so callers only set what differs.
type LicenseConfig struct {
	Project string // project name, e.g. "stle"
	Holder  string // copyright holder, e.g. "2024 Cooolrik"
	Type    string // license type, e.g. "MIT"
	Link    string // link to the license text
}

// DefaultLicense is the process-wide default license configuration.
var DefaultLicense = LicenseConfig{
	Project: "stle",
	Holder:  "2024 Cooolrik",
	Type:    "MIT",
	Link:    "https://github.com/Cooolrik/stle/blob/main/LICENSE",
}

func (c *LicenseConfig) withDefaults() LicenseConfig {
	out := DefaultLicense
	if c == nil {
		return out
	}
	if c.Project != "" {
		out.Project = c.Project
	}
	if c.Holder != "" {
		out.Holder = c.Holder
	}
	if c.Type != "" {
		out.Type = c.Type
	}
	if c.Link != "" {
		out.Link = c.Link
	}
	return out
}

// LicenseHeader emits the two-line license comment at the top of a
// generated file. Pass nil for DefaultLicense.
func (b *Builder) LicenseHeader(cfg *LicenseConfig) {
	c := cfg.withDefaults()
	b.Comment(fmt.Sprintf("%s Copyright (c) %s", c.Project, c.Holder))
	b.Comment(fmt.Sprintf("Licensed under the %s license %s", c.Type, c.Link))
}

// GuardToken derives a header-guard token from a file name and project
// name: "_{project}_{fileName}_" upper-cased, with spaces, hyphens and
// dots replaced by underscores.
//
//	GuardToken("my-file.h", "proj") == "_PROJ_MY_FILE_H_"
func GuardToken(fileName, project string) string {
	token := fmt.Sprintf("_%s_%s_", project, fileName)
	token = strings.ToUpper(token)
	replacer := strings.NewReplacer("-", "_", " ", "_", ".", "_")
	return replacer.Replace(token)
}

// BeginHeaderGuard emits "#pragma once" followed by the #ifndef/#define
// pair for the guard token derived from fileName and project, and returns
// the token.
//
// The caller must pass the returned token unchanged to EndHeaderGuard;
// the builder does not track open guards.
func (b *Builder) BeginHeaderGuard(fileName, project string) string {
	token := GuardToken(fileName, project)
	b.Line("#pragma once")
	b.Linef("#ifndef %s", token)
	b.Linef("#define %s", token)
	return token
}

// EndHeaderGuard closes a guard opened with BeginHeaderGuard.
func (b *Builder) EndHeaderGuard(token string) {
	b.Linef("#endif//%s", token)
}

// InlineFile appends the contents of another file line by line, stripping
// trailing whitespace from each line. Lines are appended verbatim with no
// re-indentation, preserving the inlined file's own formatting. IO errors
// are returned to the caller.
func (b *Builder) InlineFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to inline file '%s': %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		b.Raw(strings.TrimRight(scanner.Text(), " \t\r\n"))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read inlined file '%s': %w", path, err)
	}
	return nil
}

// DisableWarnings emits an explanatory comment and a conditional
// compilation block that pushes and disables the listed diagnostics, one
// branch for MSVC warning numbers and one for GCC/Clang flag names. Pass
// an empty comment for the default explanation.
func (b *Builder) DisableWarnings(msvc, gcc []string, comment string) {
	if comment == "" {
		comment = "Disable warnings that are caused by code which we cannot control"
	}
	b.Comment(comment)
	b.Line("#ifdef _MSC_VER")
	b.Line("#pragma warning( push )")
	for _, w := range msvc {
		b.Linef("#pragma warning( disable : %s )", w)
	}
	b.Line("#elif defined(__GNUC__)")
	b.Line("#pragma GCC diagnostic push")
	for _, w := range gcc {
		b.Linef("#pragma GCC diagnostic ignored \"%s\"", w)
	}
	b.Line("#endif")
}

// RestoreWarnings emits the structural mirror of DisableWarnings, popping
// the previously pushed diagnostics in both compiler branches. Pass an
// empty comment for the default explanation.
func (b *Builder) RestoreWarnings(comment string) {
	if comment == "" {
		comment = "Re-enable warnings again"
	}
	b.Comment(comment)
	b.Line("#ifdef _MSC_VER")
	b.Line("#pragma warning( pop )")
	b.Line("#elif defined(__GNUC__)")
	b.Line("#pragma GCC diagnostic pop")
	b.Line("#endif")
}
