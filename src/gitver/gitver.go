// Package gitver reads the source revision a manifest is generated from.
package gitver

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when rootDir is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Info holds revision metadata for HEAD.
type Info struct {
	SHA    string // short commit hash, 7 chars
	Branch string // empty on detached HEAD
	Tag    string // tag pointing at HEAD, empty if none
	Dirty  bool   // uncommitted or untracked changes present
}

// Version returns the tag's semver when HEAD is exactly at a clean semver
// tag, otherwise "0.0.0-dev+<sha>".
func (i *Info) Version() string {
	if i.Tag != "" && !i.Dirty {
		if v, err := semver.NewVersion(i.Tag); err == nil {
			return v.String()
		}
	}
	return fmt.Sprintf("0.0.0-dev+%s", i.SHA)
}

// Detect resolves Info for the repository containing rootDir.
func Detect(rootDir string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, rootDir)
		}
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("reading HEAD: %w", err)
	}

	info := &Info{SHA: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	tag, err := tagAt(repo, head.Hash())
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	info.Tag = tag

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	info.Dirty = !status.IsClean()

	return info, nil
}

// tagAt returns the first tag, lightweight or annotated, pointing at hash.
func tagAt(repo *git.Repository, hash plumbing.Hash) (string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return "", err
	}
	defer iter.Close()

	var found string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if obj, err := repo.TagObject(target); err == nil {
			target = obj.Target
		}
		if target == hash {
			found = ref.Name().Short()
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return "", err
	}
	return found, nil
}

var errStop = errors.New("stop")
