// Package installer writes the pre-commit hook entry point into the
// repository's hook directory, refusing to touch hooks it does not own.
package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/fmthook/fmthook/internal/git"
	"github.com/fmthook/fmthook/pkg/logger"
)

// HookName is the git hook this tool installs itself as.
const HookName = "pre-commit"

// SignatureMarker identifies a hook file written by this tool. Detection is
// an exact substring match on this line, never content sniffing.
const SignatureMarker = "# Installed by fmthook."

const hookFilePermissions = 0o755

// Exact user-facing messages; scripts match on them.
var (
	// ErrAlreadyInstalled is benign but still exits non-zero so wrapping
	// automation can detect the re-run.
	ErrAlreadyInstalled = errors.New("The hook is already installed.")

	// ErrInstallConflict means a hook owned by something else is in place.
	ErrInstallConflict = errors.New(
		"There's already an existing pre-commit hook, but for something else.")
)

// State describes who owns the hook file, if anyone.
type State int

const (
	// StateAbsent means no hook file exists.
	StateAbsent State = iota

	// StateInstalledBySelf means the hook file carries our signature.
	StateInstalledBySelf

	// StateInstalledByOther means a foreign hook file is in place.
	StateInstalledByOther
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "Absent"
	case StateInstalledBySelf:
		return "InstalledBySelf"
	case StateInstalledByOther:
		return "InstalledByOther"
	default:
		return "Unknown"
	}
}

// Outcome reports where the hook was installed.
type Outcome struct {
	HookPath string
	RepoRoot string
}

// Installer resolves the target repository and writes the hook entry point.
type Installer struct {
	cwd       string
	out       io.Writer
	log       logger.Logger
	exePath   func() (string, error)
	discover  func(path string) (string, error)
	newRunner func(dir string) git.Runner
}

// Option customizes an Installer, mainly for tests.
type Option func(*Installer)

// WithExePath overrides how the running executable's path is resolved.
func WithExePath(fn func() (string, error)) Option {
	return func(i *Installer) { i.exePath = fn }
}

// WithDiscover overrides repository root discovery.
func WithDiscover(fn func(path string) (string, error)) Option {
	return func(i *Installer) { i.discover = fn }
}

// WithRunnerFactory overrides how git runners are created per directory.
func WithRunnerFactory(fn func(dir string) git.Runner) Option {
	return func(i *Installer) { i.newRunner = fn }
}

// New creates an Installer operating from cwd.
func New(cwd string, newRunner func(dir string) git.Runner, out io.Writer, log logger.Logger, opts ...Option) *Installer {
	inst := &Installer{
		cwd:       cwd,
		out:       out,
		log:       log,
		exePath:   os.Executable,
		discover:  git.DiscoverRoot,
		newRunner: newRunner,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// Install writes the hook entry point into the target repository's hook
// directory. Re-running is detected and reported; a foreign hook is never
// overwritten or appended to.
func (i *Installer) Install() (*Outcome, error) {
	repoRoot, err := i.resolveTargetRepo()
	if err != nil {
		return nil, err
	}

	hooksDir, err := i.newRunner(repoRoot).GetHooksDir()
	if err != nil {
		return nil, err
	}

	hookPath := filepath.Join(hooksDir, HookName)

	state, err := DetectState(hookPath)
	if err != nil {
		return nil, err
	}

	switch state {
	case StateInstalledBySelf:
		return nil, ErrAlreadyInstalled
	case StateInstalledByOther:
		return nil, ErrInstallConflict
	case StateAbsent:
	}

	if err := os.MkdirAll(hooksDir, hookFilePermissions); err != nil {
		return nil, errors.Wrap(err, "creating hooks directory")
	}

	content, err := i.hookContent()
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(hookPath, []byte(content), hookFilePermissions); err != nil {
		return nil, errors.Wrap(err, "writing hook file")
	}

	i.log.Info("hook installed", "path", hookPath)
	fmt.Fprintln(i.out, "Pre-commit hook installed.")

	return &Outcome{HookPath: hookPath, RepoRoot: repoRoot}, nil
}

// resolveTargetRepo returns the working tree the hook belongs to. When the
// tool is invoked from its own checkout nested inside a larger repository
// (a submodule or a plain clone under the outer tree), the hook goes into
// the containing repository, not the tool checkout.
func (i *Installer) resolveTargetRepo() (string, error) {
	top, err := i.discover(i.cwd)
	if err != nil {
		return "", err
	}

	exe, exeErr := i.exePath()
	if exeErr != nil || !isWithin(top, exe) {
		return top, nil
	}

	if sp, err := i.newRunner(top).GetSuperprojectRoot(); err == nil && sp != "" {
		return sp, nil
	}

	if outer, err := i.discover(filepath.Dir(top)); err == nil {
		return outer, nil
	}

	return top, nil
}

// hookContent renders the hook stub. The absolute path of the current
// executable is baked in so the hook keeps working when the binary is not
// on git's PATH; a PATH lookup is the fallback.
func (i *Installer) hookContent() (string, error) {
	exe, err := i.exePath()
	if err != nil {
		return "", errors.Wrap(err, "resolving executable path")
	}

	var builder strings.Builder

	builder.WriteString("#!/bin/sh\n")
	builder.WriteString(SignatureMarker + "\n")
	builder.WriteString("# Checks staged content formatting before every commit.\n")
	builder.WriteString("# Reinstall with \"fmthook install\"; bypass once with \"git commit --no-verify\".\n")
	builder.WriteString("FMTHOOK=" + shellQuote(exe) + "\n")
	builder.WriteString("if [ ! -x \"$FMTHOOK\" ]; then\n")
	builder.WriteString("    FMTHOOK=fmthook\n")
	builder.WriteString("fi\n")
	builder.WriteString("exec \"$FMTHOOK\" \"$@\"\n")

	return builder.String(), nil
}

// DetectState classifies the hook file at path.
func DetectState(path string) (State, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is inside the repo's hook dir
	if err != nil {
		if os.IsNotExist(err) {
			return StateAbsent, nil
		}

		return StateAbsent, errors.Wrap(err, "reading existing hook")
	}

	if strings.Contains(string(content), SignatureMarker) {
		return StateInstalledBySelf, nil
	}

	return StateInstalledByOther, nil
}

// isWithin reports whether path is inside dir.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// shellQuote single-quotes a path for safe embedding in the hook stub.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
