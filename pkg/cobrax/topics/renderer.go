package topics

import (
	"path"

	"github.com/charmbracelet/glamour"
)

// Renderer turns raw topic content into terminal output. name is the
// topic's file name, used to tell markdown from plain text.
type Renderer interface {
	Render(content, name string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour and leaves other
// topics unchanged
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or path;
	// empty or "auto" detects it from the terminal
	Style string
	// Width wraps lines; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output, falling back to
// the raw content if glamour fails
func (r *GlamourRenderer) Render(content, name string) string {
	if path.Ext(name) != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
