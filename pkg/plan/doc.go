// Package plan arranges the artifacts of one build into a path tree.
//
// The tree is the single place where output routing is checked: a url used
// as both a file and a directory is a conflict, a url added twice keeps the
// first artifact. Once built, the plan offers two traversals used by the
// publisher: DirNodes yields the fewest directories whose recursive creation
// holds every file, FileNodes yields every file.
//
// A Plan is not safe for concurrent use.
package plan
