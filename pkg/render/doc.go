// Package render loads page templates for rendered artifacts.
//
// Templates use text/template syntax. Every file found under the loader's
// search directories is available to pages by its slash-separated path
// relative to that directory, so a page can wrap itself in a layout:
//
//	{{template "base.html.tmpl" .}}
//	{{define "content"}}...{{end}}
//
// Parsed pages are cached by absolute path. Purge drops the cache, which a
// long running process does before each rebuild.
package render
