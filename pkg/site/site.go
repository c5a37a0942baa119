package site

import (
	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/config"
	"github.com/arthur-debert/volt/pkg/engine"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
	"github.com/arthur-debert/volt/pkg/logging"
	"github.com/arthur-debert/volt/pkg/plan"
	"github.com/arthur-debert/volt/pkg/publish"
	"github.com/arthur-debert/volt/pkg/render"
	"github.com/arthur-debert/volt/pkg/sitemap"
	"github.com/arthur-debert/volt/pkg/static"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/semaphore"
)

// Hook transforms the collected artifacts before they are planned. Hooks
// run in the order they were added and may add, drop or replace items.
type Hook func(s *Site, items []artifact.Artifact) ([]artifact.Artifact, error)

// Option configures a Site.
type Option func(*Site)

// WithFS sets the filesystem. Defaults to the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(s *Site) { s.fs = fs }
}

// WithEngines sets the engine registry. Defaults to engine.DefaultRegistry.
func WithEngines(r *engine.Registry) Option {
	return func(s *Site) { s.engines = r }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Site) { s.logger = l }
}

// BuildOptions selects what a build includes and how it is promoted.
type BuildOptions struct {
	Clean  bool
	Drafts bool
}

// Site is a buildable project. Build itself takes no lock; concurrent
// callers go through Rebuild, TryRebuild or a Rebuilder.
type Site struct {
	cfg       *config.Config
	fs        afero.Fs
	engines   *engine.Registry
	templates *render.Loader
	hooks     []Hook
	artifacts []artifact.Artifact
	logger    zerolog.Logger

	// sem is held by Rebuild and TryRebuild for the length of a build.
	sem *semaphore.Weighted
}

// New creates a site for cfg.
func New(cfg *config.Config, opts ...Option) (*Site, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "site needs a config")
	}

	s := &Site{cfg: cfg, sem: semaphore.NewWeighted(1)}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = filesystem.NewOS()
	}
	if s.engines == nil {
		s.engines = engine.DefaultRegistry()
	}
	if s.logger.GetLevel() == zerolog.Disabled {
		s.logger = logging.GetLogger("site")
	}

	var dirs []string
	if dir := cfg.ThemeTemplatesDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	loader, err := render.NewLoader(render.Options{
		FS:        s.fs,
		Dirs:      dirs,
		CacheSize: cfg.Templates.CacheSize,
		Strict:    cfg.Templates.Strict,
	})
	if err != nil {
		return nil, err
	}
	s.templates = loader

	if cfg.Sitemap.Enabled {
		s.AddHook(SitemapHook)
	}
	return s, nil
}

// DefaultBuildOptions reads build options from the configuration.
func (s *Site) DefaultBuildOptions() BuildOptions {
	return BuildOptions{Clean: s.cfg.Build.Clean, Drafts: s.cfg.Build.Drafts}
}

func (s *Site) Config() *config.Config { return s.cfg }

// Templates is the loader used for rendered pages.
func (s *Site) Templates() *render.Loader { return s.templates }

// AddHook appends a hook.
func (s *Site) AddHook(h Hook) {
	s.hooks = append(s.hooks, h)
}

// Artifacts returns the items of the last collection.
func (s *Site) Artifacts() []artifact.Artifact { return s.artifacts }

// Collect gathers every artifact of the site and stores them on s.
func (s *Site) Collect(drafts bool) ([]artifact.Artifact, error) {
	done := logging.LogOperationStart(s.logger, "collect")
	defer done()

	s.templates.Purge()

	eng, err := s.engines.New(s.cfg.Engine.Name, engine.Env{
		Config:    s.cfg,
		FS:        s.fs,
		Templates: s.templates,
		Logger:    s.logger.With().Str("engine", s.cfg.Engine.Name).Logger(),
	})
	if err != nil {
		return nil, err
	}

	statics, err := s.staticArtifacts(drafts)
	if err != nil {
		return nil, err
	}
	pages, err := eng.PrepareArtifacts(drafts)
	if err != nil {
		return nil, err
	}

	items := make([]artifact.Artifact, 0, len(statics)+len(pages))
	items = append(items, statics...)
	items = append(items, pages...)
	s.artifacts = items

	for _, h := range s.hooks {
		out, err := h(s, s.artifacts)
		if err != nil {
			return nil, err
		}
		s.artifacts = out
	}

	s.updateRenderContext(map[string]any{
		"site":   map[string]any{"name": s.cfg.Site.Name, "url": s.cfg.Site.URL},
		"config": s.cfg.Raw,
	})

	s.logger.Debug().
		Int("static", len(statics)).
		Int("pages", len(pages)).
		Int("total", len(s.artifacts)).
		Msg("Collected artifacts")
	return s.artifacts, nil
}

func (s *Site) staticArtifacts(drafts bool) ([]artifact.Artifact, error) {
	var layers []static.Layer

	add := func(name, dir string) error {
		if dir == "" {
			return nil
		}
		items, err := static.Collect(s.fs, dir, s.cfg.InvocationDir)
		if err != nil {
			return err
		}
		layers = append(layers, static.Layer{Name: name, Items: items})
		return nil
	}

	if err := add("theme", s.cfg.ThemeStaticDir()); err != nil {
		return nil, err
	}
	if err := add("user", s.cfg.StaticDir()); err != nil {
		return nil, err
	}
	if drafts {
		if err := add("draft", s.cfg.DraftStaticDir()); err != nil {
			return nil, err
		}
	}
	return static.Merge(layers...), nil
}

func (s *Site) updateRenderContext(kv map[string]any) {
	for _, a := range s.artifacts {
		if r, ok := a.(*artifact.Rendered); ok {
			r.UpdateContext(kv)
		}
	}
}

// Plan collects the site and places every artifact in a plan without
// writing anything.
func (s *Site) Plan(drafts bool) (*plan.Plan, error) {
	items, err := s.Collect(drafts)
	if err != nil {
		return nil, err
	}
	p := plan.New()
	if err := p.AddAll(items); err != nil {
		return nil, err
	}
	return p, nil
}

// Build collects, plans and publishes the site.
func (s *Site) Build(opts BuildOptions) (*publish.Result, error) {
	done := logging.LogOperationStart(s.logger, "build")
	defer done()

	p, err := s.Plan(opts.Drafts)
	if err != nil {
		return nil, err
	}

	pub := publish.New(publish.Options{
		FS:               s.fs,
		StagingRoot:      s.cfg.Build.StagingRoot,
		StagingPrefix:    s.cfg.Build.StagingPrefix,
		RelaxPermissions: s.cfg.RelaxPermissions(),
		Logger:           s.logger.With().Str("component", "publish").Logger(),
	})
	return pub.Build(p, s.cfg.OutputDir(), opts.Clean)
}

// Select returns the collected artifacts whose url matches pattern.
func (s *Site) Select(pattern string) []artifact.Artifact {
	return artifact.Select(s.artifacts, pattern)
}

// Extract removes the collected artifacts matching pattern and returns
// them. Hooks use it to take pages over.
func (s *Site) Extract(pattern string) []artifact.Artifact {
	matching, rest := artifact.Extract(s.artifacts, pattern)
	s.artifacts = rest
	return matching
}

// Has reports whether any collected artifact matches pattern.
func (s *Site) Has(pattern string) bool {
	return artifact.Has(s.artifacts, pattern)
}

// SitemapHook appends /sitemap.xml built from the collected pages.
func SitemapHook(s *Site, items []artifact.Artifact) ([]artifact.Artifact, error) {
	if artifact.Has(items, sitemap.URL) {
		s.logger.Debug().Msg("Sitemap already provided, not generating one")
		return items, nil
	}
	lit, err := sitemap.Build(s.cfg.Site.URL, items)
	if err != nil {
		return nil, err
	}
	return append(items, lit), nil
}
