package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
	"github.com/arthur-debert/volt/pkg/logging"
	"github.com/arthur-debert/volt/pkg/paths"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// PagesName is the name of the builtin pages engine.
const PagesName = "pages"

// TemplateExt marks content files rendered as templates. The extension is
// dropped from the url: about.html.tmpl is published as about.html.
const TemplateExt = ".tmpl"

// Pages publishes the contents directory as is, rendering template files
// and copying everything else.
type Pages struct {
	env    Env
	logger zerolog.Logger
}

// NewPages is the factory of the pages engine.
func NewPages(env Env) (Engine, error) {
	if env.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "pages engine needs a config")
	}
	if env.FS == nil {
		env.FS = filesystem.NewOS()
	}
	logger := env.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("engine.pages")
	}
	return &Pages{env: env, logger: logger}, nil
}

func (p *Pages) Name() string { return PagesName }

func (p *Pages) PrepareArtifacts(drafts bool) ([]artifact.Artifact, error) {
	cfg := p.env.Config

	items, err := p.collect(cfg.ContentsDir(), cfg.StaticDir(), cfg.DraftContentsDir())
	if err != nil {
		return nil, err
	}
	if !drafts {
		return items, nil
	}

	draftItems, err := p.collect(cfg.DraftContentsDir(), cfg.DraftStaticDir())
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.URL()] = i
	}
	for _, d := range draftItems {
		if i, ok := index[d.URL()]; ok {
			p.logger.Info().Str("url", d.URL()).Msg("Draft replaces published page")
			items[i] = d
			continue
		}
		items = append(items, d)
	}
	return items, nil
}

// collect walks root, skipping the excluded directories, and converts every
// file into an artifact addressed by its path below root.
func (p *Pages) collect(root string, exclude ...string) ([]artifact.Artifact, error) {
	if ok, err := afero.DirExists(p.env.FS, root); err != nil || !ok {
		return nil, err
	}

	var items []artifact.Artifact
	err := afero.Walk(p.env.FS, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			for _, ex := range exclude {
				if path == ex {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if p.ignored(info.Name()) {
			p.logger.Trace().Str("path", path).Msg("Ignoring content file")
			return nil
		}

		rel, err := paths.CalcRelPath(path, root)
		if err != nil {
			return err
		}
		a, err := p.convert(path, paths.RelParts(rel))
		if err != nil {
			return err
		}
		items = append(items, a)
		return nil
	})
	if err != nil {
		if _, ok := err.(*errors.VoltError); ok {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.ErrNotFound, "could not read contents of %q", root).
			WithDetail("path", root)
	}
	return items, nil
}

func (p *Pages) convert(path string, parts []string) (artifact.Artifact, error) {
	last := len(parts) - 1
	if !strings.HasSuffix(parts[last], TemplateExt) || parts[last] == TemplateExt {
		return artifact.NewCopied(path, parts), nil
	}

	if p.env.Templates == nil {
		return nil, errors.Newf(errors.ErrTemplateLoad, "no template loader to render %q", path).
			WithDetail("source", path)
	}
	tmpl, err := p.env.Templates.LoadFile(path)
	if err != nil {
		return nil, err
	}

	parts = append([]string(nil), parts...)
	parts[last] = strings.TrimSuffix(parts[last], TemplateExt)
	url := artifact.JoinURL(parts)

	ctx := map[string]any{
		"page": map[string]any{
			"url":    url,
			"source": path,
			"name":   parts[last],
		},
	}
	return artifact.NewRendered(url, tmpl, ctx).WithSource(path), nil
}

// ignored reports whether name matches an engine.ignore pattern. Patterns
// are checked by config.Validate.
func (p *Pages) ignored(name string) bool {
	for _, pattern := range p.env.Config.Engine.Ignore {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}
	return false
}
