package plan

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/logging"
	"github.com/arthur-debert/volt/pkg/paths"
	"github.com/rs/zerolog"
)

// Plan is the conflict-checked tree of every artifact of one build.
type Plan struct {
	root      *Node
	rootParts []string
	files     int
	logger    zerolog.Logger
}

// New creates a plan whose root is the site root itself.
func New() *Plan {
	return NewWithRoot("")
}

// NewWithRoot creates a plan whose root sits at prefix inside the site.
// Every artifact added must have a url starting with prefix.
func NewWithRoot(prefix string) *Plan {
	parts := artifact.SplitURL(prefix)
	return &Plan{
		root:      newDir(strings.Join(parts, "/")),
		rootParts: parts,
		logger:    logging.GetLogger("plan"),
	}
}

// Root returns the root node.
func (p *Plan) Root() *Node { return p.root }

// Len is the number of file nodes.
func (p *Plan) Len() int { return p.files }

// Add places a in the tree.
//
// Every segment but the last must resolve to a directory; a file found on the
// way is a routing conflict. If the last segment already exists as a file the
// artifact is a duplicate and is ignored, so the first artifact added for a
// url wins. If it exists as a directory it is a routing conflict.
func (p *Plan) Add(a artifact.Artifact) error {
	parts := a.URLParts()

	if len(parts) < len(p.rootParts) || !slices.Equal(parts[:len(p.rootParts)], p.rootParts) {
		return errors.Newf(errors.ErrOutsideRoot,
			"output %q destination does not start with site root %q",
			a.URL(), artifact.JoinURL(p.rootParts)).
			WithDetail("url", a.URL()).
			WithDetail("root", p.root.path)
	}

	rest := parts[len(p.rootParts):]
	if len(rest) == 0 {
		return errors.Newf(errors.ErrInvalidInput,
			"output %q has no path below the site root", a.URL()).
			WithDetail("url", a.URL())
	}
	for _, seg := range rest {
		if err := paths.ValidateSegment(seg); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid output url %q", a.URL()).
				WithDetail("url", a.URL())
		}
	}

	cur := p.root
	last := len(rest) - 1
	for i, seg := range rest {
		child, exists := cur.Child(seg)

		if i < last {
			switch {
			case !exists:
				cur = cur.addDir(seg)
			case !child.IsDir():
				return conflict(a, child.childPath(rest[i+1]), child.path)
			default:
				cur = child
			}
			continue
		}

		if exists {
			if child.IsDir() {
				existing := child.path
				if f := child.firstFile(); f != nil {
					existing = f.path
				}
				return conflict(a, child.path, existing)
			}
			p.logger.Debug().
				Str("url", a.URL()).
				Str("kept", child.artifact.Source()).
				Str("ignored", a.Source()).
				Msg("Duplicate output url, keeping the first one")
			return nil
		}
		cur.addFile(seg, a)
		p.files++
	}
	return nil
}

func conflict(a artifact.Artifact, newPath, existing string) error {
	msg := fmt.Sprintf("path of output item %q conflicts with %q", newPath, existing)
	if src := a.Source(); src != "" {
		msg += fmt.Sprintf(" (from input %q)", src)
	}
	return errors.New(errors.ErrRoutingConflict, msg).
		WithDetail("url", a.URL()).
		WithDetail("path", newPath).
		WithDetail("conflictsWith", existing)
}

// AddAll adds every artifact, stopping at the first error.
func (p *Plan) AddAll(items []artifact.Artifact) error {
	for _, a := range items {
		if err := p.Add(a); err != nil {
			return err
		}
	}
	return nil
}

// DirNodes yields the smallest set of directory nodes whose creation, with
// parents, materializes every directory of the plan: the directories that
// have children and whose children are all files. The walk uses an explicit
// stack and visits each node once.
func (p *Plan) DirNodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{p.root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if cur.leafDir() {
				if !yield(cur) {
					return
				}
				continue
			}
			for _, k := range cur.order {
				if c := cur.children[k]; c.IsDir() {
					stack = append(stack, c)
				}
			}
		}
	}
}

// FileNodes yields every file node. The order is stable for a given
// sequence of Add calls but is not otherwise specified.
func (p *Plan) FileNodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{p.root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !cur.IsDir() {
				if !yield(cur) {
					return
				}
				continue
			}
			for _, k := range cur.order {
				stack = append(stack, cur.children[k])
			}
		}
	}
}

// Lookup returns the node at the given url, if any.
func (p *Plan) Lookup(url string) (*Node, bool) {
	parts := artifact.SplitURL(url)
	if len(parts) < len(p.rootParts) || !slices.Equal(parts[:len(p.rootParts)], p.rootParts) {
		return nil, false
	}
	cur := p.root
	for _, seg := range parts[len(p.rootParts):] {
		if !cur.IsDir() {
			return nil, false
		}
		next, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
