package artifact

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Outcome tells what Write did to the destination.
type Outcome int

const (
	// OutcomeWritten means the destination was created or replaced.
	OutcomeWritten Outcome = iota
	// OutcomeUnchanged means the destination already held the same content.
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Artifact is one file to produce in the site output.
type Artifact interface {
	// URL is the canonical rooted path of the artifact within the site.
	URL() string

	// URLParts is URL split on "/" with empty segments dropped.
	URLParts() []string

	// Source is the input file the artifact originates from, or "" if unknown.
	Source() string

	// Write materializes the artifact under buildDir. Parent directories
	// must already exist.
	Write(fsys afero.Fs, buildDir string) (Outcome, error)
}

// SplitURL splits a url on "/" discarding empty segments.
func SplitURL(url string) []string {
	raw := strings.Split(url, "/")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// JoinURL builds a rooted url from its segments.
func JoinURL(parts []string) string {
	return "/" + strings.Join(parts, "/")
}

// base carries the url shared by every payload kind. It is never mutated
// after construction.
type base struct {
	url   string
	parts []string
}

func newBase(url string) base {
	parts := SplitURL(url)
	return base{url: url, parts: parts}
}

func (b base) URL() string { return b.url }

// URLParts returns a copy so callers cannot alter the artifact address.
func (b base) URLParts() []string {
	out := make([]string, len(b.parts))
	copy(out, b.parts)
	return out
}

func (b base) destination(buildDir string) string {
	return filepath.Join(append([]string{buildDir}, b.parts...)...)
}
