// Package checker verifies that C/C++ sources carry the expected license
// header and header-guard boilerplate, and can rewrite files that don't.
//
// # Overview
//
// A LineRule pins one line of a file to canonical text: either an exact
// string or a regular expression with a canonical fix (so any copyright
// year is accepted, but fixes stamp the configured one). HeaderRules builds
// the rule set for a source file from the project configuration: two
// license lines for every file, plus the pragma-once/guard lines for
// headers. CheckTree applies the rules across the project's source
// directories.
//
// # Usage
//
//	cfg, _ := project.Load(".")
//	violations, err := checker.CheckTree(".", cfg)
//	for _, v := range violations {
//	    fmt.Printf("%s:%d: want %q\n", v.Path, v.Line, v.Want)
//	}
package checker
