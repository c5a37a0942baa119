package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	testutil.KeepGlobalLogger(t)
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-file", "-", "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func siteTree() testutil.FileTree {
	return testutil.FileTree{
		"contents": testutil.FileTree{
			"index.html":      "hi",
			"about.html.tmpl": "about {{.site.name}}",
			"static":          testutil.FileTree{"a.txt": "hello"},
		},
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "volt version")
}

func TestBuildCmd(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	out, err := run(t, "-C", dir, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "Built site in")

	assert.Equal(t, map[string]string{
		"index.html": "hi",
		"about.html": "about Test",
		"a.txt":      "hello",
	}, testutil.OutputFiles(t, dir))
}

func TestBuildCmdTerminalFormat(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	out, err := run(t, "-C", dir, "build", "--format", "terminal")
	require.NoError(t, err)
	assert.Contains(t, out, "Built site")
	testutil.AssertFileContent(t, filepath.Join(dir, "output", "index.html"), "hi")
}

func TestBuildCmdWithWaitTimeout(t *testing.T) {
	dir := testutil.NewProject(t, testutil.MinimalConfig+"\n[build]\nwait_timeout = \"5s\"\n", siteTree())

	_, err := run(t, "-C", dir, "build")
	require.NoError(t, err)
	testutil.AssertFileContent(t, filepath.Join(dir, "output", "a.txt"), "hello")
}

func TestBuildCmdMissingVariable(t *testing.T) {
	dir := testutil.NewProject(t, "", testutil.FileTree{
		"contents": testutil.FileTree{"page.html.tmpl": "[{{.x}}]"},
	})

	_, err := run(t, "-C", dir, "build")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	assert.Equal(t, "/page.html", errors.GetErrorDetails(err)["url"])
	testutil.AssertNoFile(t, filepath.Join(dir, "output"))
}

func TestBuildCmdJSON(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	out, err := run(t, "-C", dir, "build", "--format", "json")
	require.NoError(t, err)

	var res struct {
		OutputDir string `json:"outputDir"`
		Clean     bool   `json:"clean"`
		Files     int    `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, filepath.Join(dir, "output"), res.OutputDir)
	assert.True(t, res.Clean)
	assert.Equal(t, 3, res.Files)
}

func TestBuildCmdCleanAndMerge(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())
	stale := testutil.CreateFile(t, filepath.Join(dir, "output"), "stale.txt", "old")

	_, err := run(t, "-C", dir, "build", "--no-clean")
	require.NoError(t, err)
	testutil.AssertFileContent(t, stale, "old")
	testutil.AssertFileContent(t, filepath.Join(dir, "output", "index.html"), "hi")

	_, err = run(t, "-C", dir, "build", "--clean")
	require.NoError(t, err)
	testutil.AssertNoFile(t, stale)
}

func TestBuildCmdCleanFlagsExclusive(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	_, err := run(t, "-C", dir, "build", "--clean", "--no-clean")
	assert.Error(t, err)
}

func TestBuildCmdOutputOverride(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	_, err := run(t, "-C", dir, "build", "-o", "public")
	require.NoError(t, err)
	testutil.AssertFileContent(t, filepath.Join(dir, "public", "index.html"), "hi")
	testutil.AssertNoFile(t, filepath.Join(dir, "output"))
}

func TestBuildCmdDrafts(t *testing.T) {
	tree := siteTree()
	tree["contents"].(testutil.FileTree)[".draft"] = testutil.FileTree{"index.html": "draft"}
	dir := testutil.NewProject(t, "", tree)

	_, err := run(t, "-C", dir, "build")
	require.NoError(t, err)
	testutil.AssertFileContent(t, filepath.Join(dir, "output", "index.html"), "hi")

	_, err = run(t, "-C", dir, "build", "--drafts")
	require.NoError(t, err)
	testutil.AssertFileContent(t, filepath.Join(dir, "output", "index.html"), "draft")
}

func TestBuildCmdFailureKeepsOutput(t *testing.T) {
	dir := testutil.NewProject(t, "", testutil.FileTree{
		"contents": testutil.FileTree{"bad.html.tmpl": "{{.missing.value}}"},
	})
	kept := testutil.CreateFile(t, filepath.Join(dir, "output"), "keep.txt", "keep")

	_, err := run(t, "-C", dir, "build")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	testutil.AssertFileContent(t, kept, "keep")
}

func TestBuildCmdBadFormat(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	_, err := run(t, "-C", dir, "build", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	testutil.AssertNoFile(t, filepath.Join(dir, "output"))
}

func TestPlanCmd(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	out, err := run(t, "-C", dir, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "index.html [copied]")
	assert.Contains(t, out, "about.html [rendered]")
	assert.Contains(t, out, "a.txt [copied]")
	testutil.AssertNoFile(t, filepath.Join(dir, "output"))
}

func TestPlanCmdYAML(t *testing.T) {
	dir := testutil.NewProject(t, "", siteTree())

	out, err := run(t, "-C", dir, "plan", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "url: /index.html")
	assert.Contains(t, out, "kind: copied")
}

func TestPlanCmdRoutingConflict(t *testing.T) {
	dir := testutil.NewProject(t, "", testutil.FileTree{
		"contents": testutil.FileTree{
			"docs":   "a file",
			"static": testutil.FileTree{"docs": testutil.FileTree{"x.txt": "x"}},
		},
	})

	_, err := run(t, "-C", dir, "plan")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRoutingConflict))
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blog")

	out, err := run(t, "init", dir, "--name", "Blog", "--url", "https://blog.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Created project in "+dir)

	content := testutil.ReadFile(t, filepath.Join(dir, "volt.toml"))
	assert.Contains(t, content, "[site]")
	assert.Contains(t, content, "Blog")
	assert.Contains(t, content, "# [build]")
	assert.True(t, testutil.DirExists(t, filepath.Join(dir, "contents")))
	assert.True(t, testutil.DirExists(t, filepath.Join(dir, "contents", "static")))

	// The generated project builds.
	testutil.CreateFile(t, filepath.Join(dir, "contents"), "index.html", "hi")
	_, err = run(t, "-C", dir, "build")
	require.NoError(t, err)
	testutil.AssertFileContent(t, filepath.Join(dir, "output", "index.html"), "hi")
}

func TestInitCmdRefusesExistingProject(t *testing.T) {
	dir := testutil.NewProject(t, "", nil)

	_, err := run(t, "init", dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	testutil.AssertFileContent(t, filepath.Join(dir, "volt.toml"), testutil.MinimalConfig)

	_, err = run(t, "init", dir, "--force", "--name", "Again")
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dir, "volt.toml")), "Again")
}

func TestInitCmdTheme(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "init", dir, "--theme", "plain")
	require.NoError(t, err)
	assert.True(t, testutil.DirExists(t, filepath.Join(dir, "theme", "plain", "templates")))
}

func TestCompletionCmd(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := run(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "volt")
		})
	}

	_, err := run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man")

	_, err := run(t, "man", "--dir", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "volt.1")
	assert.Contains(t, names, "volt-build.1")
}
