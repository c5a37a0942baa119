package testutil

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileMakesParents(t *testing.T) {
	dir := t.TempDir()
	path := CreateFile(t, dir, "a/b/c.txt", "hello")

	assert.Equal(t, filepath.Join(dir, "a", "b", "c.txt"), path)
	assert.True(t, DirExists(t, filepath.Join(dir, "a", "b")))
	AssertFileContent(t, path, "hello")
	AssertNoFile(t, filepath.Join(dir, "missing"))
}

func TestWriteTreeAndSnapshot(t *testing.T) {
	fs := afero.NewMemMapFs()
	WriteTree(t, fs, "/site", FileTree{
		"index.html": "home",
		"assets": FileTree{
			"css": FileTree{"main.css": "body{}"},
		},
		"empty": FileTree{},
	})

	snap := Snapshot(t, fs, "/site")
	assert.Equal(t, map[string]string{
		"index.html":          "home",
		"assets/css/main.css": "body{}",
	}, snap)

	info, err := fs.Stat("/site/empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSnapshotMissingRoot(t *testing.T) {
	assert.Empty(t, Snapshot(t, afero.NewMemMapFs(), "/nope"))
}

func TestNewProject(t *testing.T) {
	dir := NewProject(t, "", FileTree{
		"contents": FileTree{"index.html": "hi"},
	})

	AssertFileContent(t, filepath.Join(dir, "volt.toml"), MinimalConfig)
	AssertFileContent(t, filepath.Join(dir, "contents", "index.html"), "hi")
	assert.Empty(t, OutputFiles(t, dir))
}

func TestKeepGlobalLogger(t *testing.T) {
	before := zerolog.GlobalLevel()

	t.Run("reconfigure", func(t *testing.T) {
		KeepGlobalLogger(t)
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Logger = zerolog.Nop()
	})

	assert.Equal(t, before, zerolog.GlobalLevel())
}
