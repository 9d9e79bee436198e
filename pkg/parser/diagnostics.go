package parser

import "fmt"

// DiagnosticKind classifies a tag span that was left as literal text
type DiagnosticKind string

const (
	// UnterminatedTag is an opening tag without a matching close
	UnterminatedTag DiagnosticKind = "unterminated-tag"
	// MissingAttribute is a tag that needs [name=value] but was written
	// without a value
	MissingAttribute DiagnosticKind = "missing-attribute"
	// UnknownTag is a bracket token naming no registered definition
	UnknownTag DiagnosticKind = "unknown-tag"
	// RenderFailed is a matched tag whose definition returned an error
	RenderFailed DiagnosticKind = "render-failed"
	// DepthExceeded is nested content left unparsed past the depth limit
	DepthExceeded DiagnosticKind = "depth-exceeded"
)

// Diagnostic describes one recovered condition. Offset is the byte
// offset of the opening bracket in the parsed input.
type Diagnostic struct {
	Kind   DiagnosticKind `json:"kind"`
	Tag    string         `json:"tag,omitempty"`
	Offset int            `json:"offset"`
}

func (d Diagnostic) String() string {
	if d.Tag == "" {
		return fmt.Sprintf("%s at offset %d", d.Kind, d.Offset)
	}
	return fmt.Sprintf("%s [%s] at offset %d", d.Kind, d.Tag, d.Offset)
}

// Result is the outcome of parsing one document
type Result struct {
	Output      string       `json:"-"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Count returns the number of diagnostics of the given kind
func (r *Result) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
