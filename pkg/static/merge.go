package static

import (
	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/logging"
)

// Layer is one source of static files. Later layers take priority.
type Layer struct {
	// Name identifies the layer in log messages, e.g. "theme" or "draft".
	Name  string
	Items []*artifact.Copied
}

// Merge combines layers so that for every url the item of the last layer
// providing it wins. Every overwrite is logged as a warning. Items keep the
// order in which their url first appeared.
func Merge(layers ...Layer) []artifact.Artifact {
	logger := logging.GetLogger("static")

	index := make(map[string]int)
	layerOf := make(map[string]string)
	var out []artifact.Artifact

	for _, layer := range layers {
		for _, item := range layer.Items {
			url := item.URL()
			if i, ok := index[url]; ok {
				logger.Warn().
					Str("url", url).
					Str("kept", layer.Name).
					Str("overwritten", layerOf[url]).
					Msgf("Overwriting %s static file with %s version", layerOf[url], layer.Name)
				out[i] = item
				layerOf[url] = layer.Name
				continue
			}
			index[url] = len(out)
			layerOf[url] = layer.Name
			out = append(out, item)
		}
	}
	return out
}
