package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/fmthook/fmthook/internal/hook"
)

const promptText = "What would you like to do? [a]pply the fix, [f]orce the commit, or [c]ancel: "

// PromptDecider implements hook.Decider over plain line-based input. This is
// the protocol the hook speaks when git runs it without a terminal; answers
// can be piped in.
type PromptDecider struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPromptDecider creates a PromptDecider reading answers from in and
// writing prompts to out.
func NewPromptDecider(in io.Reader, out io.Writer) *PromptDecider {
	return &PromptDecider{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Choose asks for a decision, re-prompting on invalid input. The combined
// diff is NOT re-displayed on re-prompt. End of input means cancel.
func (p *PromptDecider) Choose() (hook.Decision, error) {
	for {
		fmt.Fprint(p.writer, promptText)

		line, err := p.reader.ReadString('\n')

		if decision, ok := parseDecision(line); ok {
			fmt.Fprintln(p.writer)
			return decision, nil
		}

		if err != nil {
			// Input exhausted without a decision. Treat as cancel so a
			// closed stdin never forces a commit through.
			return hook.DecisionCancel, nil
		}
	}
}

// WaitReturn blocks until the user presses return. End of input is accepted.
func (p *PromptDecider) WaitReturn() error {
	_, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "reading input")
	}

	return nil
}

// parseDecision maps a raw input line to a decision.
func parseDecision(line string) (hook.Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "a", "apply":
		return hook.DecisionApply, true
	case "f", "force":
		return hook.DecisionForce, true
	case "c", "cancel":
		return hook.DecisionCancel, true
	default:
		return hook.DecisionCancel, false
	}
}
