package paths

import (
	"strings"

	"github.com/arthur-debert/volt/pkg/errors"
)

// ValidateSegment rejects url segments that would escape or alias the
// directory they are joined to.
func ValidateSegment(segment string) error {
	switch {
	case segment == "":
		return errors.New(errors.ErrInvalidInput, "empty path segment")
	case segment == "." || segment == ParentToken:
		return errors.Newf(errors.ErrInvalidInput, "path segment %q is not allowed", segment)
	case strings.ContainsAny(segment, "/\\\x00"):
		return errors.Newf(errors.ErrInvalidInput, "path segment %q contains a separator", segment)
	}
	return nil
}
