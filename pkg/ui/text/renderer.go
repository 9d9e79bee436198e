// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/htmlify/pkg/ui/report"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *report.Conversion:
		return r.renderConversion(v)
	case *report.Tags:
		return r.renderTags(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderConversion(c *report.Conversion) error {
	for _, f := range c.Files {
		line := "Processed file " + f.Input
		if f.Output != "" {
			line += " -> " + f.Output
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
		for _, d := range f.Diagnostics {
			if _, err := fmt.Fprintf(r.output, "  %s\n", d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderTags(t *report.Tags) error {
	for _, tag := range t.Tags {
		origin := ""
		if !tag.Builtin {
			origin = " (config)"
		}
		if _, err := fmt.Fprintf(r.output, "%-24s %-9s %s%s\n",
			tag.Usage, tag.Kind, tag.Description, origin); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
