package artifact

import (
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
	"github.com/spf13/afero"
)

// Copied is an artifact copied from a file on disk.
type Copied struct {
	base
	src string
}

// NewCopied creates a copy artifact addressed by its url segments.
func NewCopied(src string, urlParts []string) *Copied {
	return &Copied{base: newBase(JoinURL(urlParts)), src: src}
}

// NewCopiedURL creates a copy artifact addressed by a url.
func NewCopiedURL(url, src string) *Copied {
	return &Copied{base: newBase(url), src: src}
}

func (c *Copied) Source() string { return c.src }

// Write copies the source unless the destination already holds the same bytes.
func (c *Copied) Write(fsys afero.Fs, buildDir string) (Outcome, error) {
	dest := c.destination(buildDir)
	copied, err := filesystem.SyncFile(fsys, c.src, dest)
	if err != nil {
		return OutcomeWritten, errors.Wrapf(err, errors.ErrFileCopy, "could not copy %q to %q", c.src, dest).
			WithDetail("url", c.url).
			WithDetail("source", c.src).
			WithDetail("destination", dest)
	}
	if !copied {
		return OutcomeUnchanged, nil
	}
	return OutcomeWritten, nil
}
