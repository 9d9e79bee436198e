// Package bbcode defines the tag definitions the parser dispatches to.
//
// Every definition implements Code. The set of variants is closed:
//
//   - SimpleCode wraps the inner content in <name>...</name>.
//   - CustomCode wraps it in caller supplied open and close strings, with
//     optional XHTML forms for void elements such as img.
//   - TemplateCode renders a template.Template with the inner content and,
//     for the advanced form, the tag attribute.
//   - TrimmingCode is a TemplateCode that strips a configured prefix from
//     the link value before rendering.
//
// Definitions are immutable after construction and carry no per-parse
// state; output mode travels in a RenderContext value.
package bbcode
