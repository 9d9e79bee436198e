package bbcode

import (
	"strings"

	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/template"
)

// DefaultInnerPlaceholder is the placeholder receiving the inner content
const DefaultInnerPlaceholder = "inner"

// TemplateOptions configures a TemplateCode
type TemplateOptions struct {
	// Inner names the placeholder for the parsed inner content.
	// Defaults to DefaultInnerPlaceholder.
	Inner string

	// Attribute names the placeholder for the link value. In the advanced
	// form it receives the tag attribute; in the simple form, when the
	// template references it, it receives the inner content.
	Attribute string

	// RequireAttribute selects the advanced form, written [name=value]
	RequireAttribute bool

	// EscapeAmpersands rewrites bare '&' in the link value to "&amp;"
	EscapeAmpersands bool
}

// TemplateCode renders a template with the inner content and, for the
// advanced form, the tag attribute
type TemplateCode struct {
	name       string
	tpl        *template.Template
	inner      string
	attribute  string
	advanced   bool
	escapeAmps bool
}

// NewTemplateCode creates a template-based code. The template must
// reference the inner placeholder, must reference the attribute
// placeholder when one is configured, and must not reference anything
// else.
func NewTemplateCode(name string, tpl *template.Template, opts TemplateOptions) (*TemplateCode, error) {
	canonical, err := CanonicalName(name)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, errors.Newf(errors.ErrInvalidTag, "tag %q has no template", canonical)
	}

	inner := opts.Inner
	if inner == "" {
		inner = DefaultInnerPlaceholder
	}
	if opts.RequireAttribute && opts.Attribute == "" {
		return nil, errors.Newf(errors.ErrInvalidTag,
			"tag %q requires an attribute but names no attribute placeholder", canonical)
	}

	required := []string{inner}
	if opts.Attribute != "" {
		required = append(required, opts.Attribute)
	}
	for _, ph := range required {
		if !tpl.Has(ph) {
			return nil, errors.Newf(errors.ErrMalformedTemplate,
				"template for tag %q does not reference placeholder %q", canonical, ph).
				WithDetail("pattern", tpl.Pattern())
		}
	}
	for _, ph := range tpl.Placeholders() {
		if ph != inner && ph != opts.Attribute {
			return nil, errors.Newf(errors.ErrMalformedTemplate,
				"template for tag %q references unknown placeholder %q", canonical, ph).
				WithDetail("pattern", tpl.Pattern())
		}
	}

	return &TemplateCode{
		name:       canonical,
		tpl:        tpl,
		inner:      inner,
		attribute:  opts.Attribute,
		advanced:   opts.RequireAttribute,
		escapeAmps: opts.EscapeAmpersands,
	}, nil
}

// Name returns the tag name
func (c *TemplateCode) Name() string { return c.name }

// UsesAttribute reports whether this is the advanced form
func (c *TemplateCode) UsesAttribute() bool { return c.advanced }

// Template returns the underlying template
func (c *TemplateCode) Template() *template.Template { return c.tpl }

// Render fills the template. The advanced form fails with
// ErrMissingAttribute when attribute is empty.
func (c *TemplateCode) Render(inner, attribute string, _ RenderContext) (string, error) {
	link, err := c.link(inner, attribute)
	if err != nil {
		return "", err
	}
	return c.render(inner, link)
}

// link returns the value destined for the attribute placeholder
func (c *TemplateCode) link(inner, attribute string) (string, error) {
	if !c.advanced {
		return inner, nil
	}
	if attribute == "" {
		return "", errors.Newf(errors.ErrMissingAttribute, "tag %q requires an attribute", c.name).
			WithDetail("tag", c.name)
	}
	return attribute, nil
}

func (c *TemplateCode) render(label, link string) (string, error) {
	values := map[string]string{c.inner: label}
	if c.attribute != "" {
		if c.escapeAmps {
			link = EscapeAmpersands(link)
		}
		values[c.attribute] = link
	}
	return c.tpl.Render(values)
}

// EscapeAmpersands replaces every '&' that does not start a character
// reference with "&amp;". Existing references such as "&amp;", "&#38;"
// or "&#x26;" are left untouched.
func EscapeAmpersands(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && !startsReference(s[i+1:]) {
			b.WriteString("&amp;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// startsReference reports whether s begins with the remainder of a
// character reference, i.e. "name;", "#123;" or "#x1F;"
func startsReference(s string) bool {
	i := 0
	switch {
	case strings.HasPrefix(s, "#x") || strings.HasPrefix(s, "#X"):
		i = 2
		for i < len(s) && isHex(s[i]) {
			i++
		}
		return i > 2 && i < len(s) && s[i] == ';'
	case strings.HasPrefix(s, "#"):
		i = 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i > 1 && i < len(s) && s[i] == ';'
	default:
		for i < len(s) && isAlnum(s[i]) {
			i++
		}
		return i > 0 && i < len(s) && s[i] == ';' && isAlpha(s[0])
	}
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool { return isAlpha(c) || (c >= '0' && c <= '9') }
func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
