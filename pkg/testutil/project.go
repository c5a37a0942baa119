package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MinimalConfig is a project file naming only the site.
const MinimalConfig = `[site]
name = "Test"
url = "https://example.com"
`

// NewProject writes a volt project to a fresh temporary directory and
// returns its path. An empty config writes MinimalConfig.
func NewProject(t *testing.T, config string, tree FileTree) string {
	t.Helper()

	dir := t.TempDir()
	if config == "" {
		config = MinimalConfig
	}
	CreateFile(t, dir, "volt.toml", config)
	if tree != nil {
		WriteTree(t, afero.NewOsFs(), dir, tree)
	}
	return dir
}

// OutputFiles snapshots the default output directory of a project.
func OutputFiles(t *testing.T, projectDir string) map[string]string {
	t.Helper()
	return Snapshot(t, afero.NewOsFs(), filepath.Join(projectDir, "output"))
}
