package filesystem

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// TreeStats counts what CopyTree did.
type TreeStats struct {
	Dirs      int
	Copied    int
	Unchanged int
	Replaced  int
}

// CopyTree overlays the tree rooted at src onto dst. Files are copied only
// when missing or different; files under dst that are absent from src are left
// alone. An entry whose type differs between src and dst (file versus
// directory) is removed from dst before copying.
func CopyTree(fsys afero.Fs, src, dst string, logger zerolog.Logger) (TreeStats, error) {
	var stats TreeStats

	err := afero.Walk(fsys, src, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		existing, statErr := fsys.Stat(target)
		if statErr == nil && existing.IsDir() != info.IsDir() {
			logger.Warn().
				Str("path", target).
				Bool("wasDir", existing.IsDir()).
				Msg("Replacing entry of a different type")
			if err := fsys.RemoveAll(target); err != nil {
				return err
			}
			stats.Replaced++
		}

		if info.IsDir() {
			if err := fsys.MkdirAll(target, 0755); err != nil {
				return err
			}
			stats.Dirs++
			return nil
		}

		copied, err := SyncFile(fsys, path, target)
		if err != nil {
			return err
		}
		if copied {
			stats.Copied++
		} else {
			stats.Unchanged++
		}
		return nil
	})

	return stats, err
}

// RelaxPermissions makes every directory under root 0777 and every file 0666,
// so output generated inside a container stays usable from the host.
func RelaxPermissions(fsys afero.Fs, root string) error {
	return afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fsys.Chmod(path, 0777)
		}
		return fsys.Chmod(path, 0666)
	})
}
