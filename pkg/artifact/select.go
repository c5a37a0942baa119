package artifact

import (
	"github.com/bmatcuk/doublestar/v4"
)

func matches(pattern, url string) bool {
	ok, err := doublestar.Match(pattern, url)
	return err == nil && ok
}

// Select returns the artifacts whose url matches the glob pattern.
// "**" crosses directory boundaries.
func Select(items []Artifact, pattern string) []Artifact {
	var out []Artifact
	for _, a := range items {
		if matches(pattern, a.URL()) {
			out = append(out, a)
		}
	}
	return out
}

// Extract splits items into the artifacts matching pattern and the rest,
// keeping the original order in both.
func Extract(items []Artifact, pattern string) (matching, rest []Artifact) {
	for _, a := range items {
		if matches(pattern, a.URL()) {
			matching = append(matching, a)
		} else {
			rest = append(rest, a)
		}
	}
	return matching, rest
}

// Has reports whether any artifact url matches pattern.
func Has(items []Artifact, pattern string) bool {
	for _, a := range items {
		if matches(pattern, a.URL()) {
			return true
		}
	}
	return false
}
