// Package filesystem provides the file operations volt performs on top of
// afero: content comparison, metadata-preserving copies and tree overlays.
//
// Every function takes an afero.Fs so the same code runs against the OS
// filesystem in production and an in-memory filesystem in tests.
package filesystem
