package hook

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=hook

import (
	"context"
	"fmt"
	"io"

	"github.com/fmthook/fmthook/internal/diff"
	"github.com/fmthook/fmthook/internal/git"
	"github.com/fmthook/fmthook/pkg/logger"
)

// Decider obtains the user's decision about a commit with formatting
// violations. Implementations live in internal/tui; the plain stdin
// implementation is used when no terminal is attached.
type Decider interface {
	// Choose asks "What would you like to do?" once and returns the chosen
	// decision. Invalid input re-prompts; end of input means cancel.
	Choose() (Decision, error)

	// WaitReturn blocks until the user presses return. End of input is not
	// an error.
	WaitReturn() error
}

// Runner drives one commit attempt through the decision flow.
type Runner struct {
	git     git.Runner
	engine  *diff.Engine
	decider Decider
	out     io.Writer
	color   bool
	log     logger.Logger

	state State
}

// NewRunner creates a hook Runner writing user-facing output to out. Color
// applies only to the diff display.
func NewRunner(
	gitRunner git.Runner,
	engine *diff.Engine,
	decider Decider,
	out io.Writer,
	color bool,
	log logger.Logger,
) *Runner {
	return &Runner{
		git:     gitRunner,
		engine:  engine,
		decider: decider,
		out:     out,
		color:   color,
		log:     log,
		state:   StateIdle,
	}
}

// State returns the current state of the decision flow.
func (r *Runner) State() State {
	return r.state
}

// Run executes the pre-commit check. A nil return lets git proceed with the
// commit; any error blocks it.
func (r *Runner) Run(ctx context.Context) error {
	cfg, err := git.ResolveHookConfig(r.git)
	if err != nil {
		return err
	}

	set, err := r.engine.ComputeViolations(ctx, cfg.Style)
	if err != nil {
		return err
	}

	if set.Empty() {
		r.log.Debug("staged content is clean")
		return nil
	}

	r.transition(StateViolationsDetected)

	fmt.Fprintln(r.out, "The staged content is not formatted correctly.")
	fmt.Fprint(r.out, diff.Colorize(set.CombinedDiff(), r.color))

	if !cfg.Interactive {
		r.transition(StateAborted)
		return ErrCommitRejected
	}

	r.transition(StatePrompting)

	decision, err := r.decider.Choose()
	if err != nil {
		return err
	}

	switch decision {
	case DecisionApply:
		return r.apply(ctx, set)
	case DecisionForce:
		return r.force()
	case DecisionCancel:
		fallthrough
	default:
		return r.cancel()
	}
}

// apply patches the staged content to its formatted form and lets git commit
// the result.
func (r *Runner) apply(ctx context.Context, set *diff.ViolationSet) error {
	r.transition(StateApplying)

	if err := r.engine.Apply(ctx, set, r.out); err != nil {
		return err
	}

	r.log.Info("formatting applied", "files", len(set.Violations))

	return nil
}

// force lets git commit the original, unformatted staged content.
func (r *Runner) force() error {
	r.transition(StateForcedCommit)

	fmt.Fprintln(r.out, "Will commit anyway!")
	fmt.Fprintln(r.out, "Press return to continue.")

	return r.decider.WaitReturn()
}

// cancel blocks the commit and leaves the repository untouched.
func (r *Runner) cancel() error {
	r.transition(StateAborted)

	fmt.Fprintln(r.out, "Commit aborted as requested.")

	return ErrUserAborted
}

func (r *Runner) transition(next State) {
	r.log.Debug("state transition", "from", r.state, "to", next)
	r.state = next
}
