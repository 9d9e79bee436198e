package bbcode

import (
	"strings"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

// TrimmingCode is a TemplateCode that removes a prefix from the link
// value before it is rendered. The visible text keeps the untrimmed
// value: in the simple form the inner content is the label, and in the
// advanced form an empty inner content is replaced by the original
// attribute whether or not it starts with the prefix. Whitespace only
// content is kept as given. With an empty prefix it renders exactly
// like the wrapped code.
type TrimmingCode struct {
	*TemplateCode
	prefix string
}

// NewTrimmingCode wraps code with the given prefix. The code's template
// must have a separate attribute placeholder for the link target.
func NewTrimmingCode(code *TemplateCode, prefix string) (*TrimmingCode, error) {
	if code == nil {
		return nil, errors.New(errors.ErrInvalidTag, "trimming code needs a template code")
	}
	if code.attribute == "" {
		return nil, errors.Newf(errors.ErrInvalidTag,
			"tag %q has no link placeholder to trim", code.name)
	}
	return &TrimmingCode{TemplateCode: code, prefix: prefix}, nil
}

// Prefix returns the configured prefix
func (c *TrimmingCode) Prefix() string { return c.prefix }

// Render trims the prefix from the link value and fills the template
func (c *TrimmingCode) Render(inner, attribute string, ctx RenderContext) (string, error) {
	if c.prefix == "" {
		return c.TemplateCode.Render(inner, attribute, ctx)
	}

	link, err := c.link(inner, attribute)
	if err != nil {
		return "", err
	}

	label := inner
	if c.advanced && inner == "" {
		label = link
	}
	return c.render(label, strings.TrimPrefix(link, c.prefix))
}
