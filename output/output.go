// Package output provides styled terminal output for the stle tools.
//
// Functions use lipgloss for styling but abstract away the details from
// callers, so every command reports results the same way.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in bold green.
// Use this for completed operations.
func Success(msg string) {
	fmt.Println(successStyle.Render("✓ " + msg))
}

// Error prints an error message in bold red.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Println(errorStyle.Render("✗ " + msg))
}

// Warn prints a warning message in bold yellow.
// Use this for conformance violations and recoverable problems.
func Warn(msg string) {
	fmt.Println(warnStyle.Render("! " + msg))
}

// Writing reports a generated file that was created or replaced.
func Writing(path string) {
	fmt.Println(infoStyle.Render("\tWriting: " + path))
}

// Skipping reports a generated file that already held identical content
// and was left untouched.
func Skipping(path string) {
	fmt.Println(stepStyle.Render("\tSkipping: " + path))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd myproject")
//	output.Step("stle check")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
// Use this for detailed debugging information.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("» " + msg))
	}
}
