package engine

import (
	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/config"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/registry"
	"github.com/arthur-debert/volt/pkg/render"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Engine produces the artifacts of a site's contents.
type Engine interface {
	Name() string

	// PrepareArtifacts returns every artifact of the contents. With drafts,
	// draft contents are included and take priority.
	PrepareArtifacts(drafts bool) ([]artifact.Artifact, error)
}

// Env is what a factory gets to build an engine.
type Env struct {
	Config    *config.Config
	FS        afero.Fs
	Templates *render.Loader
	Logger    zerolog.Logger
}

// Factory creates an engine.
type Factory func(env Env) (Engine, error)

// Registry maps engine names to factories.
type Registry struct {
	factories *registry.Registry[Factory]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: registry.New[Factory]("engine")}
}

// DefaultRegistry creates a registry holding the builtin engines.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registry.MustRegister(r.factories, PagesName, NewPages)
	return r
}

// Register adds a factory under name.
func (r *Registry) Register(name string, f Factory) error {
	return r.factories.Register(name, f)
}

// Names lists the registered engines, sorted.
func (r *Registry) Names() []string {
	return r.factories.Names()
}

// New creates the named engine.
func (r *Registry) New(name string, env Env) (Engine, error) {
	f, ok := r.factories.Lookup(name)
	if !ok {
		return nil, errors.Newf(errors.ErrEngineNotFound, "engine %q not found", name).
			WithDetail("name", name).
			WithDetail("known", r.Names())
	}

	e, err := f(env)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "could not create engine %q", name).
			WithDetail("name", name)
	}
	return e, nil
}
