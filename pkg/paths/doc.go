// Package paths provides path handling shared by the build layers:
// relativizing a source directory against the invocation directory,
// locating the project directory and validating url segments.
package paths
