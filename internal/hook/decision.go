// Package hook runs the pre-commit check: it detects formatting violations
// in staged content and drives the interactive decision about what happens
// to the commit.
package hook

//go:generate enumer -type=Decision -trimprefix=Decision -transform=lower

// Decision is the outcome of the interactive prompt. Exactly one decision is
// made per commit attempt.
type Decision int

const (
	// DecisionApply patches the staged content to its formatted form and
	// lets the commit proceed.
	DecisionApply Decision = iota

	// DecisionForce commits the original, unformatted staged content.
	DecisionForce

	// DecisionCancel aborts the commit, leaving the repository untouched.
	DecisionCancel
)
