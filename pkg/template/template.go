// Package template implements the small placeholder templates used by
// tag definitions. A pattern holds literal text and placeholders written
// as {..name..}; rendering replaces every placeholder with its value.
package template

import (
	"strings"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

const (
	// OpenDelim starts a placeholder
	OpenDelim = "{.."
	// CloseDelim ends a placeholder
	CloseDelim = "..}"
)

// segment is either literal text or a placeholder reference
type segment struct {
	text        string
	placeholder bool
}

// Template is an immutable, parsed pattern. It is safe for concurrent use.
type Template struct {
	pattern  string
	segments []segment
	names    []string
}

// Load parses pattern and returns the resulting template. It fails with
// ErrMalformedTemplate when a placeholder is not terminated or has an
// empty name.
func Load(pattern string) (*Template, error) {
	t := &Template{pattern: pattern}
	seen := make(map[string]bool)

	rest := pattern
	offset := 0
	for {
		start := strings.Index(rest, OpenDelim)
		if start < 0 {
			t.appendLiteral(rest)
			break
		}
		t.appendLiteral(rest[:start])

		nameStart := start + len(OpenDelim)
		end := strings.Index(rest[nameStart:], CloseDelim)
		if end < 0 {
			return nil, errors.Newf(errors.ErrMalformedTemplate,
				"unterminated placeholder at offset %d", offset+start).
				WithDetail("pattern", pattern)
		}
		name := rest[nameStart : nameStart+end]
		if name == "" || strings.Contains(name, OpenDelim) {
			return nil, errors.Newf(errors.ErrMalformedTemplate,
				"invalid placeholder name %q at offset %d", name, offset+start).
				WithDetail("pattern", pattern)
		}

		t.segments = append(t.segments, segment{text: name, placeholder: true})
		if !seen[name] {
			seen[name] = true
			t.names = append(t.names, name)
		}

		consumed := nameStart + end + len(CloseDelim)
		rest = rest[consumed:]
		offset += consumed
	}

	return t, nil
}

// MustLoad is like Load but panics on a malformed pattern. Meant for
// patterns compiled into the program.
func MustLoad(pattern string) *Template {
	t, err := Load(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) appendLiteral(s string) {
	if s == "" {
		return
	}
	t.segments = append(t.segments, segment{text: s})
}

// Pattern returns the source pattern
func (t *Template) Pattern() string {
	return t.pattern
}

// Placeholders returns the distinct placeholder names in order of first
// appearance
func (t *Template) Placeholders() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether the pattern references the named placeholder
func (t *Template) Has(name string) bool {
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}

// Render substitutes every placeholder with its value. Values are
// inserted verbatim and never expanded again. A placeholder without a
// value fails with ErrMissingPlaceholder.
func (t *Template) Render(values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(t.pattern))

	for _, seg := range t.segments {
		if !seg.placeholder {
			b.WriteString(seg.text)
			continue
		}
		v, ok := values[seg.text]
		if !ok {
			return "", errors.Newf(errors.ErrMissingPlaceholder,
				"no value for placeholder %q", seg.text).
				WithDetail("placeholder", seg.text)
		}
		b.WriteString(v)
	}

	return b.String(), nil
}
