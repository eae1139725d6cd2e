package tui

import (
	"io"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	"github.com/fmthook/fmthook/internal/hook"
)

// HuhDecider implements hook.Decider using a charmbracelet/huh selector.
// Only used when stdin and stdout are a real terminal.
type HuhDecider struct {
	fallback *PromptDecider
}

// NewHuhDecider creates a HuhDecider. The reader and writer back WaitReturn,
// which stays line-based even on a terminal.
func NewHuhDecider(in io.Reader, out io.Writer) *HuhDecider {
	return &HuhDecider{
		fallback: NewPromptDecider(in, out),
	}
}

// Choose presents the decision as a select form.
func (d *HuhDecider) Choose() (hook.Decision, error) {
	decision := hook.DecisionCancel

	err := huh.NewSelect[hook.Decision]().
		Title("What would you like to do?").
		Options(
			huh.NewOption("Apply the fix and commit", hook.DecisionApply),
			huh.NewOption("Force the commit as-is", hook.DecisionForce),
			huh.NewOption("Cancel the commit", hook.DecisionCancel),
		).
		Value(&decision).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return hook.DecisionCancel, nil
		}

		return hook.DecisionCancel, errors.Wrap(err, "prompt failed")
	}

	return decision, nil
}

// WaitReturn blocks until the user presses return.
func (d *HuhDecider) WaitReturn() error {
	return d.fallback.WaitReturn()
}
