package plan

import (
	"fmt"

	"github.com/arthur-debert/volt/pkg/artifact"
)

// Kind names the payload of a file entry in a description.
type Kind string

const (
	KindDir      Kind = "dir"
	KindRendered Kind = "rendered"
	KindCopied   Kind = "copied"
	KindLiteral  Kind = "literal"
	KindOther    Kind = "other"
)

// Entry is a serializable view of a node, used to print plans.
type Entry struct {
	Path     string   `yaml:"path" json:"path"`
	Kind     Kind     `yaml:"kind" json:"kind"`
	URL      string   `yaml:"url,omitempty" json:"url,omitempty"`
	Source   string   `yaml:"source,omitempty" json:"source,omitempty"`
	Children []*Entry `yaml:"children,omitempty" json:"children,omitempty"`
}

// Describe returns the tree as entries, children in insertion order.
func (p *Plan) Describe() *Entry {
	return describe(p.root)
}

func describe(n *Node) *Entry {
	if !n.IsDir() {
		return &Entry{
			Path:   n.path,
			Kind:   kindOf(n.artifact),
			URL:    n.artifact.URL(),
			Source: n.artifact.Source(),
		}
	}
	e := &Entry{Path: n.path, Kind: KindDir}
	for _, c := range n.Children() {
		e.Children = append(e.Children, describe(c))
	}
	return e
}

func kindOf(a artifact.Artifact) Kind {
	switch a.(type) {
	case *artifact.Rendered:
		return KindRendered
	case *artifact.Copied:
		return KindCopied
	case *artifact.Literal:
		return KindLiteral
	default:
		return KindOther
	}
}

// Lines flattens the description into one indented line per node.
func (e *Entry) Lines() []string {
	var out []string
	e.lines(0, &out)
	return out
}

func (e *Entry) lines(depth int, out *[]string) {
	name := e.Path
	if name == "" {
		name = "."
	}
	indent := fmt.Sprintf("%*s", depth*2, "")
	if e.Kind == KindDir {
		*out = append(*out, fmt.Sprintf("%s%s/", indent, name))
	} else {
		line := fmt.Sprintf("%s%s [%s]", indent, name, e.Kind)
		if e.Source != "" {
			line += " <- " + e.Source
		}
		*out = append(*out, line)
	}
	for _, c := range e.Children {
		c.lines(depth+1, out)
	}
}
