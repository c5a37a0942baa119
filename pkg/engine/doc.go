// Package engine turns project contents into artifacts.
//
// Engines are created by name from a Registry. The registry is an explicit
// value: callers build one with DefaultRegistry, add their own factories and
// pass it to the site, so no engine is ever looked up through global state.
// An unknown name fails with ENGINE_NOT_FOUND.
package engine
