package format

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// FakeFormatter implements Formatter for testing. Transform computes the
// formatted output; a nil Transform leaves content unchanged, which models a
// repository whose staged content is already clean.
type FakeFormatter struct {
	Transform func(src []byte, filename, style string) []byte
	Err       error
	Available bool
	Ver       *semver.Version
}

// NewFakeFormatter creates an available FakeFormatter with identity output.
func NewFakeFormatter() *FakeFormatter {
	return &FakeFormatter{
		Available: true,
		Ver:       semver.MustParse("15.0.0"),
	}
}

// Format returns the transformed content.
func (f *FakeFormatter) Format(_ context.Context, src []byte, filename, style string) ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	if f.Transform == nil {
		return src, nil
	}

	return f.Transform(src, filename, style), nil
}

// Version returns the configured version.
func (f *FakeFormatter) Version(context.Context) (*semver.Version, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	return f.Ver, nil
}

// Binary returns a placeholder binary name.
func (*FakeFormatter) Binary() string {
	return "fake-clang-format"
}

// IsAvailable reports the configured availability.
func (f *FakeFormatter) IsAvailable() bool {
	return f.Available
}
