package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is
// returned.
//
// Example:
//
//	project := input.Prompt("Project name", "stle")
//	// Displays: Project name (stle): _
func Prompt(message, defaultValue string) string {
	return promptFrom(os.Stdin, message, defaultValue)
}

func promptFrom(r io.Reader, message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// Pressing Enter returns defaultYes.
//
// Example:
//
//	if input.Confirm("Fix include/ctle/types.h?", true) {
//	    // User said yes (or pressed Enter)
//	}
//	// Displays: Fix include/ctle/types.h? [Y/n]: _
func Confirm(message string, defaultYes bool) bool {
	return confirmFrom(os.Stdin, message, defaultYes)
}

func confirmFrom(r io.Reader, message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return defaultYes
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}
	return line == "y" || line == "yes"
}
