package artifact

import (
	"bytes"
	"fmt"
	"io"
	"maps"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/spf13/afero"
)

// Template is satisfied by both *text/template.Template and
// *html/template.Template.
type Template interface {
	Name() string
	Execute(w io.Writer, data any) error
}

// Rendered is an artifact whose content comes from executing a template.
// Rendering happens in Write, never at construction.
type Rendered struct {
	base
	tmpl    Template
	context map[string]any
	src     string
}

// NewRendered creates a rendered artifact. ctx is copied.
func NewRendered(url string, tmpl Template, ctx map[string]any) *Rendered {
	c := map[string]any{"meta": map[string]any{}}
	maps.Copy(c, ctx)
	return &Rendered{base: newBase(url), tmpl: tmpl, context: c}
}

// WithSource records the input file the page was produced from.
func (r *Rendered) WithSource(path string) *Rendered {
	r.src = path
	return r
}

// UpdateContext merges kv into the render context. Existing keys are replaced.
func (r *Rendered) UpdateContext(kv map[string]any) {
	maps.Copy(r.context, kv)
}

// Context returns a copy of the render context.
func (r *Rendered) Context() map[string]any {
	return maps.Clone(r.context)
}

// Template returns the template used to render the artifact.
func (r *Rendered) Template() Template { return r.tmpl }

func (r *Rendered) Source() string { return r.src }

// Render executes the template and returns its output.
func (r *Rendered) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.context); err != nil {
		verr := errors.Wrapf(err, errors.ErrRender, "could not render output %q", r.url).
			WithDetail("url", r.url).
			WithDetail("template", r.tmpl.Name())
		if r.src != "" {
			verr.Message += fmt.Sprintf(" from input %q", r.src)
			verr.WithDetail("source", r.src)
		}
		return nil, verr
	}
	return buf.Bytes(), nil
}

func (r *Rendered) Write(fsys afero.Fs, buildDir string) (Outcome, error) {
	content, err := r.Render()
	if err != nil {
		return OutcomeWritten, err
	}
	dest := r.destination(buildDir)
	if err := afero.WriteFile(fsys, dest, content, 0644); err != nil {
		return OutcomeWritten, errors.Wrapf(err, errors.ErrFileWrite, "could not write output %q", r.url).
			WithDetail("url", r.url).
			WithDetail("destination", dest).
			WithDetail("source", r.src)
	}
	return OutcomeWritten, nil
}
