// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arthur-debert/htmlify/pkg/ui/report"
	"github.com/arthur-debert/htmlify/pkg/ui/styles"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
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
		line := styles.Render("Success", "✓") + " " + styles.Render("FilePath", f.Input)
		if f.Output != "" {
			line += styles.Render("Muted", " → ") + f.Output
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}

		for _, d := range f.Diagnostics {
			text := string(d.Kind)
			if d.Tag != "" {
				text += " " + styles.Render("Tag", "["+d.Tag+"]")
			}
			text += styles.Render("Offset", fmt.Sprintf(" @%d", d.Offset))
			if _, err := fmt.Fprintln(r.output, styles.Render("Diagnostic", text)); err != nil {
				return err
			}
		}
	}

	if len(c.Files) > 1 || c.DiagnosticCount() > 0 {
		summary := fmt.Sprintf("%d file(s) as %s, %d tag(s) left as text",
			len(c.Files), c.Mode, c.DiagnosticCount())
		if _, err := fmt.Fprintln(r.output, styles.Render("Muted", summary)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTags(t *report.Tags) error {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.GetStyle("Muted")).
		Headers("TAG", "KIND", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(styles.GetStyle("Info")).Bold(true)
			}
			if col == 0 {
				return style.Inherit(styles.GetStyle("Tag"))
			}
			return style
		})

	for _, tag := range t.Tags {
		desc := tag.Description
		if !tag.Builtin {
			desc += styles.Render("Muted", " (config)")
		}
		tbl.Row(tag.Usage, tag.Kind, desc)
	}

	_, err := fmt.Fprintln(r.output, tbl.Render())
	return err
}

// RenderError renders an error with error styling
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.Render("Error", "Error: ")+err.Error())
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Info", msg))
	return err
}
