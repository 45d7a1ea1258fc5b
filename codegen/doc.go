// Package codegen provides a line-oriented text builder for writing C and
// C++ code generators.
//
// # Overview
//
// A Builder accumulates lines of output while tracking the current
// indentation depth. Braced and indent-only scopes keep indentation
// balanced even when the enclosed body panics, and the finished text is
// synced to disk only when it differs from what is already there.
//
// # Usage
//
//	b := codegen.New(nil)
//	b.LicenseHeader(nil)
//	guard := b.BeginHeaderGuard("types.h", "myproj")
//	b.Line("")
//	b.Line("namespace myproj")
//	b.Block(&codegen.BlockOptions{Semicolon: true}, func() {
//	    b.Line("int x;")
//	})
//	b.EndHeaderGuard(guard)
//
//	result, err := b.WriteFile("include/myproj/types.h")
//
// # Idempotent writes
//
// WriteFile skips the write entirely when the file on disk is already
// byte-identical, so repeated generator runs leave timestamps untouched.
// Written files are left read-only as a "generated, do not hand-edit"
// convention; a later run restores owner write permission before replacing
// the file.
//
// A Builder is single-owner and must not be shared between goroutines.
package codegen
