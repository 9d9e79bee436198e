// Package report holds the results htmlify commands hand to renderers.
package report

import (
	"github.com/arthur-debert/htmlify/pkg/catalog"
	"github.com/arthur-debert/htmlify/pkg/convert"
)

// Conversion is the outcome of a convert run
type Conversion struct {
	Mode  string               `json:"mode"`
	Files []convert.FileResult `json:"files"`
	// Error is set when the run stopped early
	Error string `json:"error,omitempty"`
}

// DiagnosticCount returns the number of diagnostics over all files
func (c *Conversion) DiagnosticCount() int {
	n := 0
	for _, f := range c.Files {
		n += len(f.Diagnostics)
	}
	return n
}

// Tags lists tag definitions
type Tags struct {
	Tags []Tag `json:"tags"`
}

// Tag is one row of a tag listing
type Tag struct {
	Usage       string `json:"usage"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	Builtin     bool   `json:"builtin"`
}

// NewTags builds a listing from specs; the first builtin specs are
// marked as built-in
func NewTags(specs []catalog.TagSpec, builtin int) *Tags {
	t := &Tags{Tags: make([]Tag, 0, len(specs))}
	for i, s := range specs {
		t.Tags = append(t.Tags, Tag{
			Usage:       s.Usage(),
			Kind:        s.Kind,
			Description: s.Description,
			Builtin:     i < builtin,
		})
	}
	return t
}
