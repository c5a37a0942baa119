package site

import (
	"context"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/publish"
)

// Rebuild waits for any running build of s to finish and then builds. The
// wait is bounded by build.wait_timeout when set and by ctx; giving up fails
// with BUILD_IN_PROGRESS. Builds started through Rebuild or a Rebuilder of
// the same site never overlap.
func (s *Site) Rebuild(ctx context.Context, opts BuildOptions) (*publish.Result, error) {
	if timeout := s.cfg.Build.WaitTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, errors.ErrBuildInProgress, "gave up waiting for the running build").
			WithDetail("waitTimeout", s.cfg.Build.WaitTimeout.String())
	}
	defer s.sem.Release(1)
	return s.Build(opts)
}

// TryRebuild builds unless a build of s is already running, in which case it
// fails with BUILD_IN_PROGRESS right away.
func (s *Site) TryRebuild(opts BuildOptions) (*publish.Result, error) {
	if !s.sem.TryAcquire(1) {
		return nil, errors.New(errors.ErrBuildInProgress, "a build is already running")
	}
	defer s.sem.Release(1)
	return s.Build(opts)
}

// Rebuilder runs builds of one site with fixed options. It is meant for long
// running processes that rebuild on demand, such as a file watcher. All
// rebuilders of a site share its build lock.
type Rebuilder struct {
	site *Site
	opts BuildOptions
}

// NewRebuilder creates a Rebuilder running builds with opts.
func NewRebuilder(s *Site, opts BuildOptions) *Rebuilder {
	return &Rebuilder{site: s, opts: opts}
}

// Build waits for the running build, see Site.Rebuild.
func (r *Rebuilder) Build(ctx context.Context) (*publish.Result, error) {
	return r.site.Rebuild(ctx, r.opts)
}

// TryBuild fails fast when a build is running, see Site.TryRebuild.
func (r *Rebuilder) TryBuild() (*publish.Result, error) {
	return r.site.TryRebuild(r.opts)
}
