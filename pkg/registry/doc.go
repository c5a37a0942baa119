// Package registry provides a generic, thread-safe registry of named
// items. Volt uses it for engine factories; lookups of unknown names return
// a NOT_FOUND error listing the names that are known.
package registry
