// Package sitemap synthesizes a sitemap.xml artifact listing the pages of a
// site.
package sitemap

import (
	"sort"
	"strings"

	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/beevik/etree"
)

// URL is where the sitemap is published.
const URL = "/sitemap.xml"

// Namespace of the sitemap protocol.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Locations returns the page paths of items: every .html url, with
// index.html collapsed to its directory. The result is sorted.
func Locations(items []artifact.Artifact) []string {
	seen := make(map[string]bool)
	var locs []string
	for _, it := range items {
		url := it.URL()
		if !strings.HasSuffix(url, ".html") {
			continue
		}
		if strings.HasSuffix(url, "/index.html") {
			url = strings.TrimSuffix(url, "index.html")
		}
		if !seen[url] {
			seen[url] = true
			locs = append(locs, url)
		}
	}
	sort.Strings(locs)
	return locs
}

// Build returns the sitemap of items as a literal artifact. baseURL is the
// absolute url of the site and is required.
func Build(baseURL string, items []artifact.Artifact) (*artifact.Literal, error) {
	if baseURL == "" {
		return nil, errors.New(errors.ErrConfigValid, "a sitemap needs site.url to be set").
			WithDetail("key", "site.url")
	}
	base := strings.TrimRight(baseURL, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	set := doc.CreateElement("urlset")
	set.CreateAttr("xmlns", Namespace)
	for _, loc := range Locations(items) {
		set.CreateElement("url").CreateElement("loc").SetText(base + loc)
	}
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "could not encode sitemap")
	}
	return artifact.NewText(URL, string(data)), nil
}
