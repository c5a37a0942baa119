// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/volt/pkg/plan"
	"github.com/arthur-debert/volt/pkg/publish"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Summary returns the lines describing a build, shared with the terminal
// renderer.
func Summary(res *publish.Result) [][2]string {
	mode := "merge"
	if res.Clean {
		mode = "clean"
	}
	return [][2]string{
		{"output", fmt.Sprintf("%s (%s)", res.OutputDir, mode)},
		{"files", fmt.Sprintf("%d (%d written, %d unchanged)", res.Files, res.Written, res.Unchanged)},
		{"promoted", fmt.Sprintf("%d, %d already up to date", res.Promoted, res.PromoteSkipped)},
	}
}

func (r *Renderer) RenderBuild(res *publish.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Built site in %s\n", res.Duration.Round(time.Millisecond))
	for _, row := range Summary(res) {
		fmt.Fprintf(&b, "  %-9s %s\n", row[0], row[1])
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) RenderPlan(tree *plan.Entry) error {
	_, err := io.WriteString(r.output, strings.Join(tree.Lines(), "\n")+"\n")
	return err
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
