package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/htmlify/pkg/catalog"
	"github.com/arthur-debert/htmlify/pkg/convert"
	"github.com/arthur-debert/htmlify/pkg/parser"
)

func TestDiagnosticCount(t *testing.T) {
	c := &Conversion{Files: []convert.FileResult{
		{Input: "a", Diagnostics: []parser.Diagnostic{{Kind: parser.UnknownTag}}},
		{Input: "b"},
		{Input: "c", Diagnostics: []parser.Diagnostic{{Kind: parser.UnknownTag}, {Kind: parser.UnterminatedTag}}},
	}}
	assert.Equal(t, 3, c.DiagnosticCount())
}

func TestNewTags(t *testing.T) {
	specs := []catalog.TagSpec{
		{Name: "b", Kind: catalog.KindSimple, Description: "bold"},
		{Name: "color", Kind: catalog.KindTemplate, RequireAttribute: true},
		{Name: "quote", Kind: catalog.KindCustom},
	}

	tags := NewTags(specs, 2)
	assert.Equal(t, []Tag{
		{Usage: "[b]...[/b]", Kind: "simple", Description: "bold", Builtin: true},
		{Usage: "[color=...]...[/color]", Kind: "template", Builtin: true},
		{Usage: "[quote]...[/quote]", Kind: "custom", Builtin: false},
	}, tags.Tags)
}
