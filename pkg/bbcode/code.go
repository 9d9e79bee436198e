package bbcode

import (
	"strings"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

// RenderContext carries the output settings for one parse
type RenderContext struct {
	// XHTML selects XHTML syntax for void elements (" />" instead of ">")
	XHTML bool
	// LineBreaks converts newlines in the output into br elements
	LineBreaks bool
}

// HTML is the default rendering context
var HTML = RenderContext{}

// XHTML is the rendering context for XHTML output
var XHTML = RenderContext{XHTML: true}

// Code is a single tag definition
type Code interface {
	// Name returns the canonical, lowercase tag name
	Name() string

	// UsesAttribute reports whether the tag is written as [name=value]
	UsesAttribute() bool

	// Render produces the replacement for a matched tag span. inner is the
	// already parsed content between the opening and closing tag; attribute
	// is the raw value after '=' and is empty for codes without attribute.
	Render(inner, attribute string, ctx RenderContext) (string, error)
}

// Key returns the registry key for a tag name. Codes with and without
// attribute are registered under different keys so that [url] and
// [url=...] can map to different definitions.
func Key(name string, usesAttribute bool) string {
	if usesAttribute {
		return name + "="
	}
	return name
}

// KeyOf returns the registry key of a code
func KeyOf(c Code) string {
	return Key(c.Name(), c.UsesAttribute())
}

// CanonicalName validates a tag name and returns its canonical form.
// Names are lowercased; they must be non-empty and must not contain
// brackets, '=', '/' or whitespace.
func CanonicalName(name string) (string, error) {
	if name == "" {
		return "", errors.New(errors.ErrInvalidTag, "tag name cannot be empty")
	}
	if strings.ContainsAny(name, "[]=/ \t\r\n") {
		return "", errors.Newf(errors.ErrInvalidTag, "tag name %q contains reserved characters", name).
			WithDetail("tag", name)
	}
	return strings.ToLower(name), nil
}
