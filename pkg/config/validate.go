package config

import (
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks values that cannot be repaired by defaults.
func (c *Config) Validate() error {
	required := []struct{ key, value string }{
		{"dirs.output", c.Dirs.Output},
		{"dirs.contents", c.Dirs.Contents},
		{"dirs.static", c.Dirs.Static},
		{"dirs.themes", c.Dirs.Themes},
		{"dirs.draft", c.Dirs.Draft},
		{"engine.name", c.Engine.Name},
	}
	for _, r := range required {
		if r.value == "" {
			return invalid(r.key, "must not be empty")
		}
	}

	switch c.Build.RelaxPermissions {
	case RelaxAuto, RelaxAlways, RelaxNever:
	default:
		return invalid("build.relax_permissions", "must be one of auto, always, never").
			WithDetail("value", c.Build.RelaxPermissions)
	}

	for _, pattern := range c.Engine.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return invalid("engine.ignore", "malformed glob pattern").
				WithDetail("value", pattern)
		}
	}

	if c.Templates.CacheSize < 0 {
		return invalid("templates.cache_size", "must not be negative")
	}
	if c.Build.WaitTimeout < 0 {
		return invalid("build.wait_timeout", "must not be negative")
	}
	return nil
}

func invalid(key, reason string) *errors.VoltError {
	return errors.Newf(errors.ErrConfigValid, "invalid config %s: %s", key, reason).
		WithDetail("key", key)
}
