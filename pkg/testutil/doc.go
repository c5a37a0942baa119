// Package testutil provides helpers for testing volt components.
//
// Key components:
//   - File helpers: create and inspect files on the real filesystem
//   - FileTree: declarative directory layouts written to any afero.Fs
//   - Snapshot: the contents of a tree, for comparing whole outputs
//   - NewProject: a throwaway volt project on disk
//
// Usage guidelines:
//   - Prefer an in-memory afero.Fs unless the code under test renames
//     across directories or checks permissions
//   - Define test data inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
