// Package yaml provides YAML output, mostly for dumping plans
package yaml

import (
	"io"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/plan"
	"github.com/arthur-debert/volt/pkg/publish"
	yamlv3 "gopkg.in/yaml.v3"
)

// Renderer writes YAML documents
type Renderer struct {
	output io.Writer
}

func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

func (r *Renderer) encode(v interface{}) error {
	enc := yamlv3.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Renderer) RenderBuild(res *publish.Result) error {
	return r.encode(res)
}

func (r *Renderer) RenderPlan(tree *plan.Entry) error {
	return r.encode(tree)
}

func (r *Renderer) RenderError(err error) error {
	doc := map[string]interface{}{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		doc["code"] = string(code)
	}
	return r.encode(doc)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
