package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with a railties/CHANGELOG.md and returns
// its resolved root.
func initRepo(t *testing.T, commit bool) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "railties"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "railties", "CHANGELOG.md"), []byte("*   Entry.\n"), 0o644))

	if commit {
		wt, err := repo.Worktree()
		require.NoError(t, err)
		_, err = wt.Add("railties/CHANGELOG.md")
		require.NoError(t, err)
		_, err = wt.Commit("Add changelog", &git.CommitOptions{
			Author: &object.Signature{Name: "Jane Doe", Email: "jane@example.com", When: time.Now()},
		})
		require.NoError(t, err)
	}

	return dir
}

func TestRepositoryRoot(t *testing.T) {
	t.Parallel()

	root := initRepo(t, false)

	tests := map[string]struct {
		path string
	}{
		"from root":         {path: root},
		"from subdirectory": {path: filepath.Join(root, "railties")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := RepositoryRoot(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, root, got)
		})
	}
}

func TestRepositoryRoot_NotRepository(t *testing.T) {
	t.Parallel()

	_, err := RepositoryRoot(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestHeadRevision(t *testing.T) {
	t.Parallel()

	root := initRepo(t, true)

	rev, err := HeadRevision(context.Background(), root)

	require.NoError(t, err)
	assert.Len(t, rev, 7)
}

func TestHeadRevision_NoCommits(t *testing.T) {
	t.Parallel()

	_, err := HeadRevision(context.Background(), initRepo(t, false))

	assert.Error(t, err)
}
