package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"text/template"
	"time"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTemplate(t *testing.T, text string) *template.Template {
	t.Helper()
	tmpl, err := template.New("test").Option("missingkey=error").Parse(text)
	require.NoError(t, err)
	return tmpl
}

func TestSplitURL(t *testing.T) {
	tests := []struct {
		url  string
		want []string
	}{
		{"/blog/2020/01/01/hello.html", []string{"blog", "2020", "01", "01", "hello.html"}},
		{"/index.html", []string{"index.html"}},
		{"//a///b/", []string{"a", "b"}},
		{"/", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitURL(tt.url))
		})
	}
	assert.Equal(t, "/a/b.txt", JoinURL([]string{"a", "b.txt"}))
}

func TestURLPartsAreCopied(t *testing.T) {
	a := NewText("/a/b.txt", "x")
	parts := a.URLParts()
	parts[0] = "changed"
	assert.Equal(t, []string{"a", "b.txt"}, a.URLParts())
	assert.Equal(t, "/a/b.txt", a.URL())
}

func TestRenderedWrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/build", 0755))

	r := NewRendered("/index.html", mustTemplate(t, "{{.x}}"), map[string]any{"x": "hi"})
	outcome, err := r.Write(fsys, "/build")
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, outcome)

	data, err := afero.ReadFile(fsys, "/build/index.html")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestRenderedIsLazy(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/build", 0755))

	r := NewRendered("/page.html", mustTemplate(t, "{{.site}}:{{.x}}"), map[string]any{"x": "1"})
	r.UpdateContext(map[string]any{"site": "volt", "x": "2"})

	_, err := r.Write(fsys, "/build")
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "/build/page.html")
	require.NoError(t, err)
	assert.Equal(t, "volt:2", string(data))
}

func TestRenderedDefaultMeta(t *testing.T) {
	r := NewRendered("/a.html", mustTemplate(t, "{{len .meta}}"), nil)
	out, err := r.Render()
	require.NoError(t, err)
	assert.Equal(t, "0", string(out))
	assert.Contains(t, r.Context(), "meta")
}

func TestRenderedFailure(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/build", 0755))

	r := NewRendered("/post.html", mustTemplate(t, "{{.missing}}"), map[string]any{}).
		WithSource("/project/contents/post.html.tmpl")

	_, err := r.Write(fsys, "/build")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	assert.Contains(t, err.Error(), "/post.html")
	assert.Contains(t, err.Error(), "/project/contents/post.html.tmpl")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/post.html", details["url"])
	assert.Equal(t, "/project/contents/post.html.tmpl", details["source"])

	exists, _ := afero.Exists(fsys, "/build/post.html")
	assert.False(t, exists, "a failed render must not leave a file behind")
}

func TestLiteralWrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/build/feeds", 0755))

	t.Run("text", func(t *testing.T) {
		l := NewText("/feeds/atom.xml", "<feed/>")
		_, err := l.Write(fsys, "/build")
		require.NoError(t, err)
		data, err := afero.ReadFile(fsys, "/build/feeds/atom.xml")
		require.NoError(t, err)
		assert.Equal(t, "<feed/>", string(data))
		assert.Equal(t, ModeText, l.Mode())
	})

	t.Run("bytes", func(t *testing.T) {
		payload := []byte{0x00, 0xff, 0x10}
		l := NewBytes("/feeds/blob.bin", payload)
		payload[0] = 0x01
		_, err := l.Write(fsys, "/build")
		require.NoError(t, err)
		data, err := afero.ReadFile(fsys, "/build/feeds/blob.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xff, 0x10}, data)
	})

	t.Run("text mode with binary payload fails", func(t *testing.T) {
		l := NewText("/feeds/bad.txt", string([]byte{0xff, 0xfe}))
		_, err := l.Write(fsys, "/build")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrContentMode))
	})
}

func TestNewLiteral(t *testing.T) {
	l, err := NewLiteral("/a.txt", "text")
	require.NoError(t, err)
	assert.Equal(t, ModeText, l.Mode())

	l, err = NewLiteral("/a.bin", []byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, ModeBytes, l.Mode())

	_, err = NewLiteral("/a.int", 42)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrContentMode))
}

func TestCopiedWrite(t *testing.T) {
	dir := t.TempDir()
	fsys := afero.NewOsFs()
	src := filepath.Join(dir, "src", "a.txt")
	build := filepath.Join(dir, "build")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(build, "assets"), 0755))
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))

	c := NewCopied(src, []string{"assets", "a.txt"})
	assert.Equal(t, "/assets/a.txt", c.URL())
	assert.Equal(t, src, c.Source())

	outcome, err := c.Write(fsys, build)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, outcome)

	dest := filepath.Join(build, "assets", "a.txt")
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	// Second write compares and leaves the destination alone.
	marker := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(dest, marker, marker))

	outcome, err = c.Write(fsys, build)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, outcome)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(marker), "unchanged copy must not touch the destination")

	// A changed source is copied again.
	require.NoError(t, os.WriteFile(src, []byte("hello again"), 0644))
	outcome, err = c.Write(fsys, build)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWritten, outcome)
}

func TestCopiedWriteMissingSource(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/build", 0755))

	c := NewCopiedURL("/a.txt", "/does/not/exist.txt")
	_, err := c.Write(fsys, "/build")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCopy))
	assert.Contains(t, err.Error(), "/does/not/exist.txt")
	assert.Contains(t, err.Error(), "/build/a.txt")
}

func TestSelectExtract(t *testing.T) {
	items := []Artifact{
		NewText("/index.html", ""),
		NewText("/blog/a.html", ""),
		NewText("/blog/2020/b.html", ""),
		NewText("/assets/style.css", ""),
	}

	urls := func(as []Artifact) []string {
		out := make([]string, 0, len(as))
		for _, a := range as {
			out = append(out, a.URL())
		}
		return out
	}

	assert.Equal(t, []string{"/blog/a.html", "/blog/2020/b.html"}, urls(Select(items, "/blog/**")))
	assert.Equal(t, []string{"/blog/a.html"}, urls(Select(items, "/blog/*.html")))
	assert.True(t, Has(items, "/**/*.css"))
	assert.False(t, Has(items, "/**/*.js"))

	matching, rest := Extract(items, "/**/*.html")
	assert.Equal(t, []string{"/index.html", "/blog/a.html", "/blog/2020/b.html"}, urls(matching))
	assert.Equal(t, []string{"/assets/style.css"}, urls(rest))
}
