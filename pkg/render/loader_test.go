package render

import (
	"bytes"
	"strings"
	"testing"
	"text/template"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, tmpl *template.Template, data any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	return buf.String()
}

func newTestLoader(t *testing.T, files map[string]string, opts Options) *Loader {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
	opts.FS = fsys
	l, err := NewLoader(opts)
	require.NoError(t, err)
	return l
}

func TestLoadFileWithLayout(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"/theme/templates/base.html.tmpl": `<title>{{.site.name}}</title>{{block "content" .}}empty{{end}}`,
		"/contents/index.html.tmpl":       `{{template "base.html.tmpl" .}}{{define "content"}}<p>{{.title}}</p>{{end}}`,
	}, Options{Dirs: []string{"/theme/templates"}, Strict: true})

	tmpl, err := l.LoadFile("/contents/index.html.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "index.html.tmpl", tmpl.Name())

	out := execute(t, tmpl, map[string]any{
		"site":  map[string]any{"name": "volt"},
		"title": "Hello",
	})
	assert.Equal(t, "<title>volt</title><p>Hello</p>", out)
}

func TestPagesDoNotLeakDefinitions(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"/tpl/base.tmpl": `[{{block "content" .}}default{{end}}]`,
		"/c/a.tmpl":      `{{template "base.tmpl" .}}{{define "content"}}A{{end}}`,
		"/c/b.tmpl":      `{{template "base.tmpl" .}}`,
	}, Options{Dirs: []string{"/tpl"}})

	a, err := l.LoadFile("/c/a.tmpl")
	require.NoError(t, err)
	b, err := l.LoadFile("/c/b.tmpl")
	require.NoError(t, err)

	assert.Equal(t, "[A]", execute(t, a, nil))
	assert.Equal(t, "[default]", execute(t, b, nil))
}

func TestLoadSearchesDirsInOrder(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"/user/page.tmpl":  "user",
		"/theme/page.tmpl": "theme",
		"/theme/only.tmpl": "theme only",
	}, Options{Dirs: []string{"/user", "/theme", "/missing"}})

	page, err := l.Load("page.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "user", execute(t, page, nil))

	only, err := l.Load("only.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "theme only", execute(t, only, nil))

	_, err = l.Load("nope.tmpl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateLoad))
}

func TestStrictMissingKey(t *testing.T) {
	files := map[string]string{"/c/p.tmpl": "{{.missing}}"}

	strict := newTestLoader(t, files, Options{Strict: true})
	tmpl, err := strict.LoadFile("/c/p.tmpl")
	require.NoError(t, err)
	err = tmpl.Execute(&bytes.Buffer{}, map[string]any{})
	assert.Error(t, err)

	lax := newTestLoader(t, files, Options{})
	tmpl, err = lax.LoadFile("/c/p.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "<no value>", execute(t, tmpl, map[string]any{}))
}

func TestStrictMissingKeyInLayout(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"/tpl/base.tmpl":    `<h1>{{.site.title}}</h1>`,
		"/c/page.html.tmpl": `[{{template "base.tmpl" .}}]`,
	}, Options{Dirs: []string{"/tpl"}, Strict: true})

	tmpl, err := l.LoadFile("/c/page.html.tmpl")
	require.NoError(t, err)
	var out bytes.Buffer
	err = tmpl.Execute(&out, map[string]any{"site": map[string]any{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	// A second page cloned from the same set stays strict.
	other, err := l.Parse("other", `{{template "base.tmpl" .}}{{.x}}`)
	require.NoError(t, err)
	assert.Error(t, other.Execute(&bytes.Buffer{}, map[string]any{"site": map[string]any{"title": "t"}}))
}

func TestFuncs(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"/tpl/shout.tmpl": `{{define "shout"}}{{upper .}}{{end}}`,
	}, Options{Dirs: []string{"/tpl"}, Funcs: template.FuncMap{"upper": strings.ToUpper}})

	tmpl, err := l.Parse("inline", `{{template "shout" "hi"}}`)
	require.NoError(t, err)
	assert.Equal(t, "HI", execute(t, tmpl, nil))
}

func TestLoadFileCachesAndPurges(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/c/p.tmpl", []byte("v1"), 0644))
	l, err := NewLoader(Options{FS: fsys, CacheSize: 2})
	require.NoError(t, err)

	first, err := l.LoadFile("/c/p.tmpl")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fsys, "/c/p.tmpl", []byte("v2"), 0644))

	again, err := l.LoadFile("/c/p.tmpl")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, "v1", execute(t, again, nil))
	assert.Equal(t, 1, l.Len())

	l.Purge()
	assert.Equal(t, 0, l.Len())
	fresh, err := l.LoadFile("/c/p.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "v2", execute(t, fresh, nil))
}

func TestLoadFileErrors(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"/c/bad.tmpl": "{{ .x ",
	}, Options{})

	_, err := l.LoadFile("/c/missing.tmpl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateLoad))

	_, err = l.LoadFile("/c/bad.tmpl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateLoad))
	assert.Equal(t, "/c/bad.tmpl", errors.GetErrorDetails(err)["source"])
}

func TestBrokenSearchDirTemplate(t *testing.T) {
	l := newTestLoader(t, map[string]string{
		"/tpl/broken.tmpl": "{{end}}",
		"/c/p.tmpl":        "ok",
	}, Options{Dirs: []string{"/tpl"}})

	_, err := l.LoadFile("/c/p.tmpl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateLoad))
}
