package plan

import (
	"path"

	"github.com/arthur-debert/volt/pkg/artifact"
)

// Node is one directory or file of the plan tree.
//
// A directory node owns its children and is only ever mutated by adding a
// child. A file node holds exactly one artifact and never changes.
type Node struct {
	path     string
	artifact artifact.Artifact
	children map[string]*Node
	order    []string
}

func newDir(p string) *Node {
	return &Node{path: p, children: make(map[string]*Node)}
}

func newFile(p string, a artifact.Artifact) *Node {
	return &Node{path: p, artifact: a}
}

// Path is the slash-separated path of the node relative to the site root.
// The root node of an unprefixed plan has an empty path.
func (n *Node) Path() string { return n.path }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.artifact == nil }

// Artifact returns the artifact of a file node, or nil for a directory.
func (n *Node) Artifact() artifact.Artifact { return n.artifact }

// Len is the number of direct children.
func (n *Node) Len() int { return len(n.order) }

// Child returns the direct child stored under key.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, k := range n.order {
		out = append(out, n.children[k])
	}
	return out
}

func (n *Node) childPath(key string) string {
	if n.path == "" {
		return key
	}
	return path.Join(n.path, key)
}

func (n *Node) addDir(key string) *Node {
	c := newDir(n.childPath(key))
	n.children[key] = c
	n.order = append(n.order, key)
	return c
}

func (n *Node) addFile(key string, a artifact.Artifact) *Node {
	c := newFile(n.childPath(key), a)
	n.children[key] = c
	n.order = append(n.order, key)
	return c
}

// firstFile returns the first file found beneath n in insertion order.
func (n *Node) firstFile() *Node {
	if !n.IsDir() {
		return n
	}
	for _, k := range n.order {
		if f := n.children[k].firstFile(); f != nil {
			return f
		}
	}
	return nil
}

// leafDir reports whether n is a directory with at least one child and only
// file children.
func (n *Node) leafDir() bool {
	if !n.IsDir() || len(n.order) == 0 {
		return false
	}
	for _, k := range n.order {
		if n.children[k].IsDir() {
			return false
		}
	}
	return true
}
