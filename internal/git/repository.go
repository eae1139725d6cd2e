package git

import (
	"github.com/cockroachdb/errors"
	gogit "github.com/go-git/go-git/v6"
)

// DiscoverRoot walks up from path and returns the working tree root of the
// enclosing repository. Discovery follows the gitdir indirection used by
// linked worktrees and submodules, where .git is a file rather than a
// directory.
func DiscoverRoot(path string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", ErrNotRepository
		}

		return "", errors.Wrap(err, "failed to open repository")
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "failed to get worktree")
	}

	return worktree.Filesystem.Root(), nil
}

// InRepository reports whether path is inside a git repository working tree.
func InRepository(path string) bool {
	_, err := DiscoverRoot(path)
	return err == nil
}
