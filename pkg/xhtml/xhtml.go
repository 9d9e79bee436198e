// Package xhtml checks that converted documents are well-formed XML.
package xhtml

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

// entities declares the HTML entities htmlify may emit beyond XML's own
var entities = map[string]string{
	"nbsp": " ",
}

// Check parses output as an XML fragment. The fragment may contain
// several top-level elements and text, so it is wrapped in a root
// element before parsing.
func Check(output string) error {
	doc := etree.NewDocument()
	doc.ReadSettings.Entity = entities
	doc.ReadSettings.ValidateInput = true

	if err := doc.ReadFromString("<htmlify>" + output + "</htmlify>"); err != nil {
		return errors.Wrap(err, errors.ErrXHTMLInvalid, "output is not well-formed XHTML").
			WithDetail("reason", strings.TrimPrefix(err.Error(), "XML syntax error "))
	}
	return nil
}
