package git

import "context"

// FakeRunner implements Runner for testing without executing git commands.
// This is a struct-based fake (not a mock) that allows tests to set state
// directly. For expectation-based testing, use the generated MockRunner.
type FakeRunner struct {
	InRepo           bool
	RepoRoot         string
	HooksDir         string
	SuperprojectRoot string
	StagedFiles      []string
	StagedBlobs      map[string][]byte
	HeadID           string
	Config           map[string]string
	Err              error

	// AppliedPatches records every patch passed to ApplyPatch.
	AppliedPatches [][]byte

	// ApplyErrs maps a patch ordinal (0-based) to an error, letting tests
	// fail the Nth application while earlier ones succeed.
	ApplyErrs map[int]error
}

// NewFakeRunner creates a new FakeRunner with sensible defaults.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		InRepo:      true,
		RepoRoot:    "/mock/repo",
		HooksDir:    "/mock/repo/.git/hooks",
		StagedFiles: []string{},
		StagedBlobs: map[string][]byte{},
		HeadID:      "0123456789abcdef0123456789abcdef01234567",
		Config:      map[string]string{},
	}
}

// IsInRepo checks if we're in a git repository.
func (f *FakeRunner) IsInRepo() bool {
	return f.InRepo
}

// GetRepoRoot returns the repository's top-level directory.
func (f *FakeRunner) GetRepoRoot() (string, error) {
	if f.Err != nil {
		return "", f.Err
	}

	if !f.InRepo {
		return "", ErrNotRepository
	}

	return f.RepoRoot, nil
}

// GetHooksDir returns the configured hook directory.
func (f *FakeRunner) GetHooksDir() (string, error) {
	if f.Err != nil {
		return "", f.Err
	}

	return f.HooksDir, nil
}

// GetSuperprojectRoot returns the configured superproject root.
func (f *FakeRunner) GetSuperprojectRoot() (string, error) {
	if f.Err != nil {
		return "", f.Err
	}

	return f.SuperprojectRoot, nil
}

// GetStagedFiles returns the configured staged files.
func (f *FakeRunner) GetStagedFiles() ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	return f.StagedFiles, nil
}

// GetStagedBlob returns the configured staged content for a path.
func (f *FakeRunner) GetStagedBlob(path string) ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	return f.StagedBlobs[path], nil
}

// GetHead returns the configured head commit id.
func (f *FakeRunner) GetHead() (string, error) {
	if f.Err != nil {
		return "", f.Err
	}

	return f.HeadID, nil
}

// ApplyPatch records the patch and fails when configured to.
func (f *FakeRunner) ApplyPatch(_ context.Context, patch []byte) error {
	ordinal := len(f.AppliedPatches)
	f.AppliedPatches = append(f.AppliedPatches, patch)

	if err, ok := f.ApplyErrs[ordinal]; ok {
		return err
	}

	return nil
}

// ConfigGet returns the configured value for a key.
func (f *FakeRunner) ConfigGet(key string) (string, bool, error) {
	if f.Err != nil {
		return "", false, f.Err
	}

	value, ok := f.Config[key]

	return value, ok, nil
}
