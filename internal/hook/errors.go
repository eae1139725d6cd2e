package hook

import "github.com/cockroachdb/errors"

var (
	// ErrCommitRejected is returned when violations are found and the hook
	// is configured as non-interactive. CI and scripted commits fail fast
	// instead of silently committing unformatted content or silently
	// rewriting it.
	ErrCommitRejected = errors.New("staged content is not formatted correctly")

	// ErrUserAborted is returned when the user cancels the commit at the
	// prompt, or the input stream ends before a decision is made.
	ErrUserAborted = errors.New("commit aborted as requested")
)
