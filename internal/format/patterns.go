package format

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultExtensions lists the file extensions clang-format understands, in
// line with the default filename filter of clang-format-diff.
var defaultExtensions = []string{
	".c", ".cc", ".cpp", ".cxx", ".c++",
	".h", ".hh", ".hpp", ".hxx",
	".m", ".mm",
	".cu", ".cuh",
	".cl", ".inc",
	".java", ".cs",
	".js", ".ts",
	".proto", ".protodevel",
}

// Matcher decides whether a staged file is subject to formatting. The
// built-in extension list can be extended with doublestar glob patterns from
// the tool configuration.
type Matcher struct {
	extensions map[string]struct{}
	patterns   []string
}

// NewMatcher creates a Matcher with the default extensions plus any extra
// glob patterns (e.g. "vendor-free/**/*.ipp").
func NewMatcher(extraPatterns ...string) *Matcher {
	extensions := make(map[string]struct{}, len(defaultExtensions))
	for _, ext := range defaultExtensions {
		extensions[ext] = struct{}{}
	}

	return &Matcher{
		extensions: extensions,
		patterns:   extraPatterns,
	}
}

// Matches reports whether path should be formatted.
func (m *Matcher) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := m.extensions[ext]; ok {
		return true
	}

	slashPath := filepath.ToSlash(path)

	for _, pattern := range m.patterns {
		if ok, err := doublestar.Match(pattern, slashPath); err == nil && ok {
			return true
		}
	}

	return false
}
