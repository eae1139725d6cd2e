package hook

// State tracks where a commit attempt is in the decision flow. Transitions
// are linear: Idle → ViolationsDetected → Prompting → one of the terminal
// states. A clean change set never leaves Idle.
type State int

const (
	// StateIdle is the initial state before violations are computed.
	StateIdle State = iota

	// StateViolationsDetected means at least one staged file is not
	// formatted correctly.
	StateViolationsDetected

	// StatePrompting means the combined diff has been shown and the hook is
	// waiting for the user's decision.
	StatePrompting

	// StateApplying means the formatting patches are being applied to the
	// index and working tree.
	StateApplying

	// StateForcedCommit means the commit proceeds with the original,
	// unformatted staged content.
	StateForcedCommit

	// StateAborted means the commit was rejected, either by the user or by
	// non-interactive policy.
	StateAborted
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateViolationsDetected:
		return "ViolationsDetected"
	case StatePrompting:
		return "Prompting"
	case StateApplying:
		return "Applying"
	case StateForcedCommit:
		return "ForcedCommit"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}
