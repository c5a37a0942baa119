package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// FileTree represents a directory structure for testing. A string value is
// a file with that content, a FileTree value a directory.
type FileTree map[string]interface{}

// WriteTree creates tree under base on fsys.
func WriteTree(t *testing.T, fsys afero.Fs, base string, tree FileTree) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(base, 0755))
	for name, content := range tree {
		fullPath := filepath.Join(base, name)

		switch v := content.(type) {
		case string:
			require.NoError(t, fsys.MkdirAll(filepath.Dir(fullPath), 0755))
			require.NoError(t, afero.WriteFile(fsys, fullPath, []byte(v), 0644), "write %s", fullPath)
		case FileTree:
			WriteTree(t, fsys, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// Snapshot returns every file under root keyed by its slash separated path
// relative to root. A missing root gives an empty snapshot.
func Snapshot(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()

	files := map[string]string{}
	if _, err := fsys.Stat(root); os.IsNotExist(err) {
		return files
	}

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err, "snapshot %s", root)
	return files
}
