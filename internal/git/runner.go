// Package git provides the repository operations needed by the pre-commit
// formatting hook: staged content access, patch application, hook directory
// resolution, and config reads.
package git

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=git

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	execpkg "github.com/fmthook/fmthook/internal/exec"
)

// gitCommandTimeout bounds individual git invocations. Commit-time hooks
// must never hang on a wedged subprocess.
const gitCommandTimeout = 30 * time.Second

// ErrNotRepository is returned when the current directory is not inside a
// git repository.
var ErrNotRepository = errors.New("not in a git repository")

// Runner defines the git operations used by the hook and installer.
type Runner interface {
	// IsInRepo checks if the runner's directory is inside a git repository.
	IsInRepo() bool

	// GetRepoRoot returns the repository's top-level directory.
	GetRepoRoot() (string, error)

	// GetHooksDir returns the absolute path of the repository's hook
	// directory, honoring core.hooksPath and submodule gitdir indirection.
	GetHooksDir() (string, error)

	// GetSuperprojectRoot returns the working tree of the superproject when
	// the repository is a submodule, or "" otherwise.
	GetSuperprojectRoot() (string, error)

	// GetStagedFiles returns the paths staged for commit, in index order.
	// Deleted files are excluded; there is nothing to format in them.
	GetStagedFiles() ([]string, error)

	// GetStagedBlob returns the staged (index) content of a file, which may
	// differ from the working tree copy.
	GetStagedBlob(path string) ([]byte, error)

	// GetHead returns the current commit id, or an error before the first
	// commit.
	GetHead() (string, error)

	// ApplyPatch applies a unified diff to both the index and the working
	// tree.
	ApplyPatch(ctx context.Context, patch []byte) error

	// ConfigGet reads a git config value. The second return value reports
	// whether the key was set at all.
	ConfigGet(key string) (string, bool, error)
}

// CLIRunner implements Runner by shelling out to git. All commands are bound
// to the runner's directory via `git -C` so the runner behaves the same
// regardless of the process working directory.
type CLIRunner struct {
	dir    string
	runner execpkg.CommandRunner
}

// NewCLIRunner creates a Runner operating on the repository containing dir.
// An empty dir means the process working directory.
func NewCLIRunner(dir string, runner execpkg.CommandRunner) *CLIRunner {
	if dir == "" {
		dir = "."
	}

	return &CLIRunner{
		dir:    dir,
		runner: runner,
	}
}

// git runs a git command in the runner's directory and returns trimmed
// stdout. Non-zero exits surface as ExternalToolError.
func (r *CLIRunner) git(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitCommandTimeout)
	defer cancel()

	full := append([]string{"-C", r.dir}, args...)

	result, err := r.runner.Run(ctx, "git", full...)
	if err != nil {
		if result != nil && result.ExitCode != 0 {
			return "", execpkg.NewExternalToolError("git "+args[0], result)
		}

		return "", errors.Wrapf(err, "running git %s", args[0])
	}

	return strings.TrimRight(result.Stdout, "\n"), nil
}

// IsInRepo checks if the runner's directory is inside a git repository.
func (r *CLIRunner) IsInRepo() bool {
	_, err := r.git("rev-parse", "--git-dir")
	return err == nil
}

// GetRepoRoot returns the repository's top-level directory.
func (r *CLIRunner) GetRepoRoot() (string, error) {
	out, err := r.git("rev-parse", "--show-toplevel")
	if err != nil {
		return "", ErrNotRepository
	}

	return out, nil
}

// GetHooksDir returns the absolute path of the repository's hook directory.
func (r *CLIRunner) GetHooksDir() (string, error) {
	out, err := r.git("rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", err
	}

	// --git-path output is relative to the command's working directory.
	if !filepath.IsAbs(out) {
		out = filepath.Join(r.dir, out)
	}

	return filepath.Abs(out)
}

// GetSuperprojectRoot returns the superproject working tree or "".
func (r *CLIRunner) GetSuperprojectRoot() (string, error) {
	return r.git("rev-parse", "--show-superproject-working-tree")
}

// GetStagedFiles returns the paths staged for commit, in index order.
func (r *CLIRunner) GetStagedFiles() ([]string, error) {
	base, err := r.stagedDiffBase()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), gitCommandTimeout)
	defer cancel()

	// -z separates paths with NUL and turns off core.quotePath quoting, so
	// non-ASCII and special-character paths come back byte-exact.
	result, err := r.runner.Run(ctx, "git", "-C", r.dir,
		"diff-index", "--cached", "--name-only", "--diff-filter=ACMR", "-z", base)
	if err != nil {
		if result != nil && result.ExitCode != 0 {
			return nil, execpkg.NewExternalToolError("git diff-index", result)
		}

		return nil, errors.Wrap(err, "listing staged files")
	}

	out := strings.TrimRight(result.Stdout, "\x00")
	if out == "" {
		return []string{}, nil
	}

	return strings.Split(out, "\x00"), nil
}

// stagedDiffBase returns HEAD, or the empty tree object before the first
// commit so that staged files are still visible for the root commit.
func (r *CLIRunner) stagedDiffBase() (string, error) {
	if _, err := r.git("rev-parse", "--verify", "--quiet", "HEAD"); err == nil {
		return "HEAD", nil
	}

	// Computed rather than hard-coded so SHA-256 repositories work too.
	empty, err := r.git("hash-object", "-t", "tree", "/dev/null")
	if err != nil {
		return "", errors.Wrap(err, "resolving empty tree")
	}

	return empty, nil
}

// GetStagedBlob returns the staged (index) content of a file.
func (r *CLIRunner) GetStagedBlob(path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitCommandTimeout)
	defer cancel()

	result, err := r.runner.Run(ctx, "git", "-C", r.dir, "show", ":"+path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading staged content of %s", path)
	}

	return []byte(result.Stdout), nil
}

// GetHead returns the current commit id.
func (r *CLIRunner) GetHead() (string, error) {
	return r.git("rev-parse", "--verify", "HEAD")
}

// ApplyPatch applies a unified diff to both the index and the working tree.
func (r *CLIRunner) ApplyPatch(ctx context.Context, patch []byte) error {
	result, err := r.runner.RunWithStdin(
		ctx,
		bytes.NewReader(patch),
		"git", "-C", r.dir, "apply", "--index", "--whitespace=nowarn", "-",
	)
	if err != nil {
		if result != nil && result.ExitCode != 0 {
			return execpkg.NewExternalToolError("git apply", result)
		}

		return errors.Wrap(err, "running git apply")
	}

	return nil
}

// ConfigGet reads a git config value via `git config --get`. Exit status 1
// means the key is unset, which is not an error.
func (r *CLIRunner) ConfigGet(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitCommandTimeout)
	defer cancel()

	result, err := r.runner.Run(ctx, "git", "-C", r.dir, "config", "--get", key)
	if err != nil {
		if result != nil && result.ExitCode == 1 {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "reading git config %s", key)
	}

	return strings.TrimRight(result.Stdout, "\n"), true, nil
}
