package diff

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/fmthook/fmthook/internal/format"
	"github.com/fmthook/fmthook/internal/git"
	"github.com/fmthook/fmthook/pkg/logger"
)

// PatchApplyError is returned when a file's formatting patch fails to apply.
// Files patched before the failure stay patched; no rollback is attempted.
type PatchApplyError struct {
	File string
	Err  error
}

// Error returns the error message.
func (e *PatchApplyError) Error() string {
	return fmt.Sprintf("failed to apply formatting patch to %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error.
func (e *PatchApplyError) Unwrap() error {
	return e.Err
}

// Engine computes formatting violations for the staged change set and
// applies their patches.
type Engine struct {
	git       git.Runner
	formatter format.Formatter
	matcher   *format.Matcher
	log       logger.Logger
}

// NewEngine creates a diff Engine.
func NewEngine(
	gitRunner git.Runner,
	formatter format.Formatter,
	matcher *format.Matcher,
	log logger.Logger,
) *Engine {
	return &Engine{
		git:       gitRunner,
		formatter: formatter,
		matcher:   matcher,
		log:       log,
	}
}

// ComputeViolations formats every staged file with a supported extension and
// collects those whose staged content differs from the formatted output. The
// staged blob is compared, not the working tree copy, so partially staged
// files are judged on what would actually be committed.
func (e *Engine) ComputeViolations(ctx context.Context, style string) (*ViolationSet, error) {
	staged, err := e.git.GetStagedFiles()
	if err != nil {
		return nil, errors.Wrap(err, "listing staged files")
	}

	set := &ViolationSet{}

	for _, file := range staged {
		if !e.matcher.Matches(file) {
			continue
		}

		original, err := e.git.GetStagedBlob(file)
		if err != nil {
			return nil, err
		}

		formatted, err := e.formatter.Format(ctx, original, file, style)
		if err != nil {
			return nil, err
		}

		if bytes.Equal(original, formatted) {
			continue
		}

		display, patch := unifiedDiffs(file, original, formatted)

		e.log.Debug("formatting violation", "file", file)

		set.Violations = append(set.Violations, Violation{
			File:      file,
			Original:  original,
			Formatted: formatted,
			DiffText:  display,
			Patch:     patch,
		})
	}

	return set, nil
}

// Apply patches the working tree and index to the formatted content, one
// file at a time in staged order. On failure it reports the failing file and
// leaves earlier files patched; no rollback is attempted.
func (e *Engine) Apply(ctx context.Context, set *ViolationSet, out io.Writer) error {
	for _, v := range set.Violations {
		fmt.Fprintf(out, "patching file %s\n", v.File)

		if err := e.git.ApplyPatch(ctx, []byte(v.Patch)); err != nil {
			e.log.Error("patch failed", "file", v.File, "error", err)

			return &PatchApplyError{File: v.File, Err: err}
		}
	}

	return nil
}
