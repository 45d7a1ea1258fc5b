// Package input provides interactive terminal input utilities.
//
// # Usage
//
//	// Ask for text input with a default
//	project := input.Prompt("Project name", "stle")
//
//	// Ask yes/no question
//	if input.Confirm("Fix this file?", true) {
//	    // User said yes
//	}
//
// # Styling
//
// The package uses lipgloss for consistent terminal styling: prompts are
// cyan and bold, hints (defaults, [Y/n]) are gray.
//
// # Non-Interactive Mode
//
// In CI or automated environments, bypass prompts with CLI flags:
//
//	if yesFlag {
//	    fix = true // flag decided for us
//	} else {
//	    fix = input.Confirm("Fix this file?", true)
//	}
package input
