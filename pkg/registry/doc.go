// Package registry provides a generic, ordered, type-safe registry.
// The parser uses it to hold tag definitions keyed by name: the first
// registration of a name wins and later ones are rejected.
package registry
