package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// CopyFile copies src to dst, preserving the permission bits and the
// modification time of src. dst is truncated if it exists.
func CopyFile(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}

// SyncFile copies src to dst unless dst already holds the same bytes.
// It reports whether a copy happened.
func SyncFile(fsys afero.Fs, src, dst string) (bool, error) {
	exists, err := Exists(fsys, dst)
	if err != nil {
		return false, err
	}
	if exists {
		same, err := SameContent(fsys, src, dst)
		if err != nil {
			return false, err
		}
		if same {
			return false, nil
		}
	}
	if err := CopyFile(fsys, src, dst); err != nil {
		return false, err
	}
	return true, nil
}
