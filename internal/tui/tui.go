// Package tui provides the terminal implementations of the hook's decision
// prompt.
package tui

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/fmthook/fmthook/internal/hook"
)

// New selects a Decider based on terminal capabilities. An interactive
// terminal gets the huh selector; everything else (pipes, git GUIs, tests)
// gets the plain line-based prompt so the protocol stays scriptable.
//
//nolint:ireturn // Factory function intentionally returns interface
func New(noTUI bool, in io.Reader, out io.Writer) hook.Decider {
	if !noTUI && IsTerminal() {
		return NewHuhDecider(in, out)
	}

	return NewPromptDecider(in, out)
}

// IsTerminal checks if stdin and stdout are connected to a terminal.
func IsTerminal() bool {
	//nolint:gosec // G115: file descriptors are small positive integers; uintptr→int is safe
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
