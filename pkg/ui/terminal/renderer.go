// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/volt/pkg/logging"
	"github.com/arthur-debert/volt/pkg/plan"
	"github.com/arthur-debert/volt/pkg/publish"
	"github.com/arthur-debert/volt/pkg/ui/text"
	"github.com/charmbracelet/lipgloss"
)

// Renderer styles output with lipgloss
type Renderer struct {
	output io.Writer
	styles styles
}

// New creates a terminal renderer writing to w. The color profile is
// detected from w.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	logger := logging.GetLogger("ui.terminal")
	logger.Debug().
		Str("colorProfile", fmt.Sprintf("%v", r.ColorProfile())).
		Msg("Terminal renderer created")
	return &Renderer{output: w, styles: newStyles(r)}
}

// NewWithRenderer uses an explicit lipgloss renderer, e.g. with a forced
// color profile.
func NewWithRenderer(w io.Writer, r *lipgloss.Renderer) *Renderer {
	return &Renderer{output: w, styles: newStyles(r)}
}

func (r *Renderer) RenderBuild(res *publish.Result) error {
	var b strings.Builder
	b.WriteString(r.styles.success.Render("✓ Built site"))
	fmt.Fprintf(&b, " in %s\n", res.Duration.Round(time.Millisecond))
	for _, row := range text.Summary(res) {
		b.WriteString(r.styles.label.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) RenderPlan(tree *plan.Entry) error {
	var b strings.Builder
	r.renderEntry(&b, tree, 0)
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderEntry(b *strings.Builder, e *plan.Entry, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	name := e.Path
	if name == "" {
		name = "."
	}
	if e.Kind == plan.KindDir {
		b.WriteString(r.styles.dir.Render(name + "/"))
	} else {
		b.WriteString(name)
		b.WriteString(" ")
		b.WriteString(r.styles.kind.Render("[" + string(e.Kind) + "]"))
		if e.Source != "" {
			b.WriteString(" ")
			b.WriteString(r.styles.source.Render("<- " + e.Source))
		}
	}
	b.WriteString("\n")
	for _, c := range e.Children {
		r.renderEntry(b, c, depth+1)
	}
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", r.styles.err.Render("Error:"), err)
	return werr
}

func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
