package static

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
	"github.com/arthur-debert/volt/pkg/paths"
	"github.com/spf13/afero"
)

// Collect walks startDir recursively and returns one copy artifact per
// file. The url of each artifact is the file path below startDir. A missing
// startDir yields no artifacts.
//
// startDir is located through its path relative to invocationDir, so both
// must be absolute.
func Collect(fsys afero.Fs, startDir, invocationDir string) ([]*artifact.Copied, error) {
	rel, err := paths.CalcRelPath(startDir, invocationDir)
	if err != nil {
		return nil, err
	}
	root := filepath.Join(paths.ExpandHome(invocationDir), rel)

	exists, err := filesystem.Exists(fsys, root)
	if err != nil || !exists {
		return nil, err
	}

	var items []*artifact.Copied
	err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		sub, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		items = append(items, artifact.NewCopied(path, paths.RelParts(sub)))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCopy, "could not collect static files from %q", startDir).
			WithDetail("path", startDir)
	}
	return items, nil
}
