package config

import (
	"strings"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Starter holds the values written by volt init.
type Starter struct {
	Name  string
	URL   string
	Theme string
}

type starterFile struct {
	Site struct {
		Name string `toml:"name"`
		URL  string `toml:"url"`
	} `toml:"site"`
	Theme struct {
		Name string `toml:"name"`
	} `toml:"theme"`
}

// Generate renders a starter project file: the given values followed by
// the defaults, commented out, as a reference.
func Generate(s Starter) (string, error) {
	var f starterFile
	f.Site.Name = s.Name
	f.Site.URL = s.URL
	f.Theme.Name = s.Theme

	data, err := toml.Marshal(f)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "could not encode starter config")
	}

	var b strings.Builder
	b.Write(data)
	b.WriteString("\n# Defaults, uncomment to change.\n")
	b.WriteString(commentOutConfigValues(DefaultsContent()))
	return b.String(), nil
}

// commentOutConfigValues comments out every line of TOML content that is
// not blank or already a comment. Section headers are commented too, since
// the starter values above already open those tables.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
