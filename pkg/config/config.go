package config

import (
	"os"
	"path/filepath"
	"time"
)

// File names searched for when locating a project, in order.
const (
	FileName     = "volt.toml"
	YAMLFileName = "volt.yaml"
	YMLFileName  = "volt.yml"
)

// FileNames lists every accepted project file name.
var FileNames = []string{FileName, YAMLFileName, YMLFileName}

// Relaxed permission modes.
const (
	RelaxAuto   = "auto"
	RelaxAlways = "always"
	RelaxNever  = "never"
)

// dockerEnvPath marks a container runtime.
var dockerEnvPath = "/.dockerenv"

// Config is the resolved configuration of a project.
type Config struct {
	Site      SiteConfig      `koanf:"site"`
	Theme     ThemeConfig     `koanf:"theme"`
	Dirs      DirsConfig      `koanf:"dirs"`
	Build     BuildConfig     `koanf:"build"`
	Engine    EngineConfig    `koanf:"engine"`
	Templates TemplatesConfig `koanf:"templates"`
	Sitemap   SitemapConfig   `koanf:"sitemap"`

	// ProjectDir is the absolute directory holding the project file.
	ProjectDir string `koanf:"-"`
	// InvocationDir is the absolute directory volt was started from.
	InvocationDir string `koanf:"-"`
	// ConfigPath is the project file, empty when none was loaded.
	ConfigPath string `koanf:"-"`

	// Raw holds every loaded key, including ones volt does not know.
	// It is exposed to templates.
	Raw map[string]interface{} `koanf:"-"`
}

type SiteConfig struct {
	Name string `koanf:"name"`
	URL  string `koanf:"url"`
}

type ThemeConfig struct {
	Name string `koanf:"name"`
}

type DirsConfig struct {
	Output   string `koanf:"output"`
	Contents string `koanf:"contents"`
	Static   string `koanf:"static"`
	Themes   string `koanf:"themes"`
	Draft    string `koanf:"draft"`
}

type BuildConfig struct {
	Clean            bool          `koanf:"clean"`
	Drafts           bool          `koanf:"drafts"`
	StagingRoot      string        `koanf:"staging_root"`
	StagingPrefix    string        `koanf:"staging_prefix"`
	RelaxPermissions string        `koanf:"relax_permissions"`
	WaitTimeout      time.Duration `koanf:"wait_timeout"`
}

type EngineConfig struct {
	Name   string   `koanf:"name"`
	Ignore []string `koanf:"ignore"`
}

type TemplatesConfig struct {
	CacheSize int  `koanf:"cache_size"`
	Strict    bool `koanf:"strict"`
}

type SitemapConfig struct {
	Enabled bool `koanf:"enabled"`
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.ProjectDir, p)
}

// OutputDir is the public output directory.
func (c *Config) OutputDir() string { return c.resolve(c.Dirs.Output) }

// ContentsDir holds the site contents.
func (c *Config) ContentsDir() string { return c.resolve(c.Dirs.Contents) }

// StaticDir holds user static files, inside the contents directory.
func (c *Config) StaticDir() string {
	return filepath.Join(c.ContentsDir(), c.Dirs.Static)
}

// DraftContentsDir holds draft contents, inside the contents directory.
func (c *Config) DraftContentsDir() string {
	return filepath.Join(c.ContentsDir(), c.Dirs.Draft)
}

// DraftStaticDir holds draft static files.
func (c *Config) DraftStaticDir() string {
	return filepath.Join(c.DraftContentsDir(), c.Dirs.Static)
}

// ThemesDir holds the available themes.
func (c *Config) ThemesDir() string { return c.resolve(c.Dirs.Themes) }

// ThemeDir is the directory of the configured theme, or "" without one.
func (c *Config) ThemeDir() string {
	if c.Theme.Name == "" {
		return ""
	}
	return filepath.Join(c.ThemesDir(), c.Theme.Name)
}

// ThemeStaticDir is the static directory of the theme, or "".
func (c *Config) ThemeStaticDir() string {
	if dir := c.ThemeDir(); dir != "" {
		return filepath.Join(dir, "static")
	}
	return ""
}

// ThemeTemplatesDir is the templates directory of the theme, or "".
func (c *Config) ThemeTemplatesDir() string {
	if dir := c.ThemeDir(); dir != "" {
		return filepath.Join(dir, "templates")
	}
	return ""
}

// RelaxPermissions reports whether promoted output should be made world
// writable. In auto mode that happens only inside a container.
func (c *Config) RelaxPermissions() bool {
	switch c.Build.RelaxPermissions {
	case RelaxAlways:
		return true
	case RelaxNever:
		return false
	default:
		_, err := os.Stat(dockerEnvPath)
		return err == nil
	}
}
