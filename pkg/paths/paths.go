package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/volt/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectDir forces the project directory instead of searching for it
	EnvProjectDir = "VOLT_PROJECT_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ParentToken is the path segment that climbs one directory.
const ParentToken = ".."

// CalcRelPath returns the path of output relative to ref: the longest common
// prefix of both is stripped and every remaining segment of ref becomes "..".
// Both paths must be absolute after "~" expansion.
func CalcRelPath(output, ref string) (string, error) {
	ref = filepath.Clean(expandHome(ref))
	output = filepath.Clean(expandHome(output))
	if !filepath.IsAbs(ref) || !filepath.IsAbs(output) {
		return "", errors.New(errors.ErrInvalidInput,
			"could not compute relative paths of non-absolute input paths").
			WithDetail("output", output).
			WithDetail("ref", ref)
	}

	refParts := splitAbs(ref)
	outParts := splitAbs(output)

	common := 0
	for common < len(refParts) && common < len(outParts) && refParts[common] == outParts[common] {
		common++
	}

	rel := make([]string, 0, len(refParts)-common+len(outParts)-common)
	for range refParts[common:] {
		rel = append(rel, ParentToken)
	}
	rel = append(rel, outParts[common:]...)

	if len(rel) == 0 {
		return ".", nil
	}
	return filepath.Join(rel...), nil
}

// RelParts splits a relative path as returned by CalcRelPath into segments.
func RelParts(rel string) []string {
	if rel == "." || rel == "" {
		return nil
	}
	return strings.Split(filepath.ToSlash(rel), "/")
}

func splitAbs(p string) []string {
	vol := filepath.VolumeName(p)
	trimmed := strings.TrimPrefix(filepath.ToSlash(p[len(vol):]), "/")
	parts := []string{vol}
	if trimmed == "" {
		return parts
	}
	return append(parts, strings.Split(trimmed, "/")...)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome expands a leading "~" in path.
func ExpandHome(path string) string {
	return expandHome(path)
}

// FindProjectDir walks up from start until it finds a directory holding one
// of the given file names and returns that directory.
func FindProjectDir(start string, names ...string) (string, error) {
	if forced := os.Getenv(EnvProjectDir); forced != "" {
		return filepath.Abs(expandHome(forced))
	}

	dir, err := filepath.Abs(expandHome(start))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "could not resolve %q", start)
	}

	for {
		for _, name := range names {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf(errors.ErrProjectNotFound,
				"could not find a project directory from %q (looked for %s)",
				start, strings.Join(names, ", ")).
				WithDetail("start", start)
		}
		dir = parent
	}
}
