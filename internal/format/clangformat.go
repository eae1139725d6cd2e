// Package format wraps the external clang-format tool.
package format

//go:generate mockgen -source=clangformat.go -destination=clangformat_mock.go -package=format

import (
	"bytes"
	"context"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	execpkg "github.com/fmthook/fmthook/internal/exec"
)

// DefaultBinary is the formatter binary used when the tool config does not
// override it.
const DefaultBinary = "clang-format"

// MinVersion is the oldest clang-format known to support the invocation used
// here (-style and -assume-filename on stdin input).
var MinVersion = semver.MustParse("3.8.0")

// versionPattern extracts the version number from `clang-format --version`,
// tolerating distro prefixes like "Ubuntu clang-format version 14.0.0-1ubuntu1".
var versionPattern = regexp.MustCompile(`version\s+(\d+\.\d+(?:\.\d+)?)`)

// searchBinaries are the names DetectBinary probes, the plain name first,
// then the versioned names distro packages install.
var searchBinaries = []string{
	DefaultBinary,
	"clang-format-21",
	"clang-format-20",
	"clang-format-19",
	"clang-format-18",
	"clang-format-17",
	"clang-format-16",
	"clang-format-15",
	"clang-format-14",
}

// DetectBinary returns the first clang-format binary present on PATH, or ""
// when none is installed.
func DetectBinary(checker execpkg.ToolChecker) string {
	return checker.FindTool(searchBinaries...)
}

// Formatter produces the canonical form of source content.
type Formatter interface {
	// Format rewrites src to the canonical style. The filename determines
	// the language; style may be empty to use the formatter's default.
	Format(ctx context.Context, src []byte, filename, style string) ([]byte, error)

	// Version returns the formatter's version.
	Version(ctx context.Context) (*semver.Version, error)

	// Binary returns the formatter executable name.
	Binary() string

	// IsAvailable reports whether the formatter is installed.
	IsAvailable() bool
}

// ClangFormat implements Formatter using the clang-format CLI.
type ClangFormat struct {
	binary  string
	runner  execpkg.CommandRunner
	checker execpkg.ToolChecker
}

// NewClangFormat creates a ClangFormat formatter. An empty binary selects
// DefaultBinary.
func NewClangFormat(binary string, runner execpkg.CommandRunner) *ClangFormat {
	if binary == "" {
		binary = DefaultBinary
	}

	return &ClangFormat{
		binary:  binary,
		runner:  runner,
		checker: execpkg.NewToolChecker(),
	}
}

// NewClangFormatWithChecker creates a ClangFormat with a custom ToolChecker
// (for testing).
func NewClangFormatWithChecker(
	binary string,
	runner execpkg.CommandRunner,
	checker execpkg.ToolChecker,
) *ClangFormat {
	formatter := NewClangFormat(binary, runner)
	formatter.checker = checker

	return formatter
}

// Format rewrites src to the canonical style by piping it through
// clang-format. The content is passed on stdin so the staged blob is
// formatted, not the working tree copy.
func (f *ClangFormat) Format(
	ctx context.Context,
	src []byte,
	filename, style string,
) ([]byte, error) {
	if err := f.checker.RequireTool(f.binary); err != nil {
		return nil, err
	}

	args := []string{"-assume-filename=" + filename}
	if style != "" {
		args = append(args, "-style="+style)
	}

	result, err := f.runner.RunWithStdin(ctx, bytes.NewReader(src), f.binary, args...)
	if err != nil {
		if result != nil && result.ExitCode != 0 {
			return nil, execpkg.NewExternalToolError(f.binary, result)
		}

		return nil, errors.Wrapf(err, "running %s", f.binary)
	}

	return []byte(result.Stdout), nil
}

// Version returns the formatter's version.
func (f *ClangFormat) Version(ctx context.Context) (*semver.Version, error) {
	if err := f.checker.RequireTool(f.binary); err != nil {
		return nil, err
	}

	result, err := f.runner.Run(ctx, f.binary, "--version")
	if err != nil {
		return nil, errors.Wrapf(err, "running %s --version", f.binary)
	}

	matches := versionPattern.FindStringSubmatch(result.Stdout)
	if matches == nil {
		return nil, errors.Newf("cannot parse %s version from %q", f.binary, result.Stdout)
	}

	version, err := semver.NewVersion(matches[1])
	if err != nil {
		return nil, errors.Wrapf(err, "parsing version %q", matches[1])
	}

	return version, nil
}

// Binary returns the formatter executable name.
func (f *ClangFormat) Binary() string {
	return f.binary
}

// IsAvailable reports whether the formatter is installed.
func (f *ClangFormat) IsAvailable() bool {
	return f.checker.IsAvailable(f.binary)
}
