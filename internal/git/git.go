// Package git locates the Rails checkout being inspected. It uses go-git so
// no git binary is needed.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"

	"github.com/skipkayhil/rail-inspector/internal/logging"
)

// ErrNotRepository is returned when no repository contains the given path.
var ErrNotRepository = errors.New("not a git repository")

// openRepo opens the repository containing path, walking up parent
// directories. If path is empty, the current working directory is used.
func openRepo(ctx context.Context, path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logging.Get(ctx).Debug().Str("path", path).Msg("opening repository")

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRepository)
	}
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// RepositoryRoot returns the worktree root of the repository containing path.
func RepositoryRoot(ctx context.Context, path string) (string, error) {
	repo, err := openRepo(ctx, path)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	root := worktree.Filesystem.Root()
	logging.Get(ctx).Debug().Str("root", root).Msg("found repository root")
	return root, nil
}

// HeadRevision returns the abbreviated commit hash HEAD points to.
func HeadRevision(ctx context.Context, path string) (string, error) {
	repo, err := openRepo(ctx, path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	return head.Hash().String()[:7], nil
}
