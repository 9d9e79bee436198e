// Package parser turns BBCode markup into HTML by dispatching matched
// tags to the bbcode definitions held in its registry.
//
// The scan runs left to right. An opening token [name] or [name=value]
// whose key is registered is matched with the [/name] that brings the
// count of nested same-name openings back to zero; the text in between
// is parsed recursively first and then handed to the definition. Text
// that does not form a recognised, terminated tag is copied to the
// output unchanged, so any input produces some output.
package parser
