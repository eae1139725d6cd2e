package exec

import "strings"

// ExternalToolError is returned when an external tool exits non-zero or
// crashes. The captured output is carried along so the failure can be
// reported to the user verbatim.
type ExternalToolError struct {
	Tool     string
	ExitCode int
	Output   string
}

// Error returns the error message.
func (e *ExternalToolError) Error() string {
	msg := e.Tool + " failed"

	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}

	return msg
}

// NewExternalToolError builds an ExternalToolError from a command result.
func NewExternalToolError(tool string, result *CommandResult) *ExternalToolError {
	err := &ExternalToolError{Tool: tool}

	if result != nil {
		err.ExitCode = result.ExitCode
		err.Output = result.Stderr

		if err.Output == "" {
			err.Output = result.Stdout
		}
	}

	return err
}
