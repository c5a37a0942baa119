// Package static gathers static assets as copy artifacts and merges the
// theme, user and draft asset layers of a site.
package static
