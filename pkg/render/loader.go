package render

import (
	"os"
	"path/filepath"
	"sync"
	"text/template"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
	"github.com/arthur-debert/volt/pkg/logging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultCacheSize is the number of parsed pages kept in memory.
const DefaultCacheSize = 128

// Options configures a Loader.
type Options struct {
	FS afero.Fs

	// Dirs are searched in order; the first directory holding a name wins.
	Dirs []string

	// CacheSize bounds the page cache. Zero means DefaultCacheSize.
	CacheSize int

	// Strict makes a missing context key a render error instead of
	// printing "<no value>".
	Strict bool

	Funcs template.FuncMap
}

// Loader parses templates from disk.
type Loader struct {
	fs     afero.Fs
	dirs   []string
	strict bool
	funcs  template.FuncMap
	logger zerolog.Logger

	mu    sync.Mutex
	cache *lru.Cache[string, *template.Template]
	base  *template.Template
}

// NewLoader creates a Loader.
func NewLoader(opts Options) (*Loader, error) {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, *template.Template](size)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "could not create template cache")
	}

	return &Loader{
		fs:     fs,
		dirs:   opts.Dirs,
		strict: opts.Strict,
		funcs:  opts.Funcs,
		logger: logging.GetLogger("render"),
		cache:  cache,
	}, nil
}

// Load finds name in the search directories and parses it.
func (l *Loader) Load(name string) (*template.Template, error) {
	for _, dir := range l.dirs {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if ok, _ := filesystem.Exists(l.fs, path); ok {
			return l.LoadFile(path)
		}
	}
	return nil, errors.Newf(errors.ErrTemplateLoad, "template %q not found", name).
		WithDetail("template", name).
		WithDetail("dirs", l.dirs)
}

// LoadFile parses the template at path together with every template of the
// search directories.
func (l *Loader) LoadFile(path string) (*template.Template, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "invalid template path %q", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.cache.Get(abs); ok {
		return t, nil
	}

	text, err := afero.ReadFile(l.fs, abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "could not read template %q", abs).
			WithDetail("source", abs)
	}

	t, err := l.page(filepath.Base(abs), string(text))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "could not parse template %q", abs).
			WithDetail("source", abs)
	}

	l.cache.Add(abs, t)
	l.logger.Trace().Str("template", abs).Msg("Template parsed")
	return t, nil
}

// Parse parses an in-memory template. The result is not cached.
func (l *Loader) Parse(name, text string) (*template.Template, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.page(name, text)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "could not parse template %q", name).
			WithDetail("template", name)
	}
	return t, nil
}

// Purge drops every cached template.
func (l *Loader) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Purge()
	l.base = nil
}

// Len is the number of cached pages.
func (l *Loader) Len() int {
	return l.cache.Len()
}

// page parses text into a clone of the shared template set.
func (l *Loader) page(name, text string) (*template.Template, error) {
	base, err := l.shared()
	if err != nil {
		return nil, err
	}
	set, err := base.Clone()
	if err != nil {
		return nil, err
	}
	// Clone drops options too.
	l.configure(set)
	for _, t := range set.Templates() {
		l.configure(t)
	}
	return l.configure(set.New(name)).Parse(text)
}

// shared returns the set of every template of the search directories,
// parsing it on first use. Must be called with mu held.
func (l *Loader) shared() (*template.Template, error) {
	if l.base != nil {
		return l.base, nil
	}

	base := l.newSet()
	for _, dir := range l.dirs {
		if ok, _ := afero.DirExists(l.fs, dir); !ok {
			continue
		}
		err := afero.Walk(l.fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			name := filepath.ToSlash(rel)
			if base.Lookup(name) != nil {
				return nil
			}
			text, err := afero.ReadFile(l.fs, path)
			if err != nil {
				return err
			}
			_, err = l.configure(base.New(name)).Parse(string(text))
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	l.base = base
	return base, nil
}

func (l *Loader) newSet() *template.Template {
	return l.configure(template.New(""))
}

// configure applies the loader options to t. Associated templates share
// funcs with their set but not options, so each one needs it.
func (l *Loader) configure(t *template.Template) *template.Template {
	if l.strict {
		t = t.Option("missingkey=error")
	}
	if l.funcs != nil {
		t = t.Funcs(l.funcs)
	}
	return t
}
