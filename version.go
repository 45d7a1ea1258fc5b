// Package stle holds module-wide metadata for the stle code-generation
// toolkit.
package stle

// Version is the current stle release.
const Version = "0.2.0"
