package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsInteractive returns true if both stdin and stdout are terminals, which is
// what full-screen forms need.
func IsInteractive() bool {
	return IsTerminal() && term.IsTerminal(int(os.Stdout.Fd()))
}
