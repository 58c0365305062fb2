// Package inspect finds the changelogs of a Rails checkout and parses them
// concurrently.
package inspect

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/skipkayhil/rail-inspector/internal/changelog"
	"github.com/skipkayhil/rail-inspector/internal/logging"
)

// Discover returns the files under root matching glob, sorted by path.
// Directories that happen to match are skipped.
func Discover(fsys afero.Fs, root, glob string) ([]string, error) {
	matches, err := afero.Glob(fsys, filepath.Join(root, glob))
	if err != nil {
		return nil, fmt.Errorf("matching %q under %s: %w", glob, root, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := fsys.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		paths = append(paths, m)
	}
	sort.Strings(paths)
	return paths, nil
}

// Runner parses changelogs with bounded concurrency.
type Runner struct {
	fs   afero.Fs
	jobs int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithJobs sets the maximum number of files parsed at once. Values below 1
// leave the default of one per CPU.
func WithJobs(n int) RunnerOption {
	return func(r *Runner) {
		if n >= 1 {
			r.jobs = n
		}
	}
}

// NewRunner creates a Runner that reads from fsys.
func NewRunner(fsys afero.Fs, opts ...RunnerOption) *Runner {
	r := &Runner{
		fs:   fsys,
		jobs: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Jobs returns the concurrency limit.
func (r *Runner) Jobs() int {
	return r.jobs
}

// Run loads and parses every path. Results are in the order of paths. The
// first failure, such as a missing file, cancels the remaining work and is
// returned.
func (r *Runner) Run(ctx context.Context, paths []string) ([]*changelog.Changelog, error) {
	results := make([]*changelog.Changelog, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := r.load(ctx, path)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) load(ctx context.Context, path string) (*changelog.Changelog, error) {
	start := time.Now()

	c, err := changelog.Load(r.fs, path)
	if err != nil {
		return nil, err
	}

	logging.Get(ctx).Debug().
		Str("path", path).
		Int("entries", len(c.Entries)).
		Int("offenses", c.OffenseCount()).
		Dur("elapsed", time.Since(start)).
		Msg("parsed changelog")
	return c, nil
}
