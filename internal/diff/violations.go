// Package diff computes formatting violations for staged content and applies
// the resulting patches back to the index and working tree.
package diff

import "strings"

// Violation records one staged file whose content differs from its formatted
// form.
type Violation struct {
	// File is the staged path, relative to the repository root.
	File string

	// Original is the staged (index) content.
	Original []byte

	// Formatted is the formatter's output for the staged content.
	Formatted []byte

	// DiffText is the human-readable unified diff for this file.
	DiffText string

	// Patch is the git-applicable unified diff (a/ b/ prefixed, -p1).
	Patch string
}

// ViolationSet aggregates all violations for one commit attempt, in staged
// file order. One set drives at most one prompt.
type ViolationSet struct {
	Violations []Violation
}

// Empty reports whether no staged file has formatting issues.
func (s *ViolationSet) Empty() bool {
	return s == nil || len(s.Violations) == 0
}

// Files returns the violating paths in order.
func (s *ViolationSet) Files() []string {
	files := make([]string, 0, len(s.Violations))
	for _, v := range s.Violations {
		files = append(files, v.File)
	}

	return files
}

// CombinedDiff returns a single unified diff spanning all violating files,
// for display. It is shown at most once per commit attempt.
func (s *ViolationSet) CombinedDiff() string {
	var builder strings.Builder

	for _, v := range s.Violations {
		builder.WriteString(v.DiffText)
	}

	return builder.String()
}
