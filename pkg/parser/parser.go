package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/htmlify/pkg/bbcode"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/logging"
	"github.com/arthur-debert/htmlify/pkg/registry"
)

// DefaultMaxDepth bounds how deeply tag contents are parsed recursively
const DefaultMaxDepth = 64

// Parser holds the registered tag definitions. It is read-only once
// built and may be shared by concurrent Parse calls.
type Parser struct {
	codes    registry.Registry[bbcode.Code]
	maxDepth int
	logger   zerolog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithMaxDepth sets how many levels of nested tags are rendered. Content
// nested deeper is copied through unparsed.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// WithLogger replaces the parser's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates an empty parser
func New(opts ...Option) *Parser {
	p := &Parser{
		codes:    registry.New[bbcode.Code](),
		maxDepth: DefaultMaxDepth,
		logger:   logging.GetLogger("parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register adds a tag definition. A definition whose name and attribute
// form are already registered is rejected with ErrAlreadyExists; the
// first registration stays active.
func (p *Parser) Register(code bbcode.Code) error {
	if code == nil {
		return errors.New(errors.ErrInvalidTag, "cannot register a nil code")
	}
	if err := p.codes.Register(bbcode.KeyOf(code), code); err != nil {
		return err
	}
	p.logger.Trace().
		Str("tag", code.Name()).
		Bool("attribute", code.UsesAttribute()).
		Msg("Registered tag")
	return nil
}

// MustRegister registers code and panics on failure
func (p *Parser) MustRegister(code bbcode.Code) {
	if err := p.Register(code); err != nil {
		panic(err)
	}
}

// Codes returns the registered definitions in registration order
func (p *Parser) Codes() []bbcode.Code {
	return p.codes.Values()
}

// Lookup returns the definition for a tag name in the given form
func (p *Parser) Lookup(name string, withAttribute bool) (bbcode.Code, bool) {
	return p.codes.Lookup(bbcode.Key(name, withAttribute))
}

// Parse converts text and returns the output only
func (p *Parser) Parse(text string, ctx bbcode.RenderContext) string {
	return p.ParseDocument(text, ctx).Output
}

// ParseDocument converts text and reports every tag span it had to
// leave as literal text
func (p *Parser) ParseDocument(text string, ctx bbcode.RenderContext) *Result {
	r := &run{parser: p, ctx: ctx, closes: indexCloses(text)}
	out := r.parse(text, 0, 0)
	if ctx.LineBreaks {
		out = convertLineBreaks(out, ctx.XHTML)
	}

	p.logger.Debug().
		Int("inputBytes", len(text)).
		Int("outputBytes", len(out)).
		Int("diagnostics", len(r.diags)).
		Msg("Parsed document")

	return &Result{Output: out, Diagnostics: r.diags}
}

// run carries the state of a single ParseDocument call
type run struct {
	parser *Parser
	ctx    bbcode.RenderContext
	diags  []Diagnostic
	closes closeIndex
}

func (r *run) report(kind DiagnosticKind, tag string, offset int) {
	r.diags = append(r.diags, Diagnostic{Kind: kind, Tag: tag, Offset: offset})
	if e := r.parser.logger.Trace(); e.Enabled() {
		e.Str("kind", string(kind)).
			Str("tag", tag).
			Int("offset", offset).
			Msg("Left tag as literal text")
	}
}

// parse converts s; base is the offset of s in the document
func (r *run) parse(s string, base, depth int) string {
	if depth >= r.parser.maxDepth {
		if strings.IndexByte(s, '[') >= 0 {
			r.report(DepthExceeded, "", base)
		}
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	pos := 0
	for pos < len(s) {
		rel := strings.IndexByte(s[pos:], '[')
		if rel < 0 {
			break
		}
		start := pos + rel
		b.WriteString(s[pos:start])

		tok, status := scanToken(s, start)
		switch status {
		case noToken:
			// no ']' left anywhere, nothing further can match
			b.WriteString(s[start:])
			return b.String()
		case literalBracket:
			b.WriteByte('[')
			pos = start + 1
			continue
		}

		if tok.closing {
			b.WriteString(s[start:tok.end])
			pos = tok.end
			continue
		}

		code, found := r.parser.Lookup(tok.name, tok.hasAttr)
		if !found {
			kind := UnknownTag
			if !tok.hasAttr && r.parser.codes.Has(bbcode.Key(tok.name, true)) {
				kind = MissingAttribute
			}
			r.report(kind, tok.name, base+start)
			b.WriteString(s[start:tok.end])
			pos = tok.end
			continue
		}

		closeStart, closeEnd, ok := r.closes.lookup(base, start, len(s), tok.name)
		if !ok {
			r.report(UnterminatedTag, tok.name, base+start)
			b.WriteString(s[start:tok.end])
			pos = tok.end
			continue
		}

		// an empty attribute can never render, so the inner text is
		// left to this level without a first pass
		if code.UsesAttribute() && tok.attr == "" {
			r.report(MissingAttribute, tok.name, base+start)
			b.WriteString(s[start:tok.end])
			pos = tok.end
			continue
		}

		mark := len(r.diags)
		inner := r.parse(s[tok.end:closeStart], base+tok.end, depth+1)
		out, err := code.Render(inner, tok.attr, r.ctx)
		if err != nil {
			// the inner text is scanned again at this level
			r.diags = r.diags[:mark]
			kind := RenderFailed
			if errors.IsErrorCode(err, errors.ErrMissingAttribute) {
				kind = MissingAttribute
			}
			r.report(kind, tok.name, base+start)
			b.WriteString(s[start:tok.end])
			pos = tok.end
			continue
		}

		b.WriteString(out)
		pos = closeEnd
	}

	if pos < len(s) {
		b.WriteString(s[pos:])
	}
	return b.String()
}

// tokenStatus tells the scanner's caller how to treat a '['
type tokenStatus int

const (
	validToken tokenStatus = iota
	literalBracket
	noToken
)

// token is a bracket token [name], [name=attr] or [/name]
type token struct {
	name    string
	attr    string
	hasAttr bool
	closing bool
	end     int // index just past ']'
}

// scanToken reads the token starting at s[start] == '['
func scanToken(s string, start int) (token, tokenStatus) {
	rel := strings.IndexAny(s[start+1:], "[]")
	if rel < 0 {
		return token{}, noToken
	}
	end := start + 1 + rel
	if s[end] == '[' || rel == 0 {
		return token{}, literalBracket
	}
	body := s[start+1 : end]

	tok := token{end: end + 1}
	if body[0] == '/' {
		tok.closing = true
		tok.name = body[1:]
		return tok, validToken
	}
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		tok.name = body[:eq]
		tok.attr = body[eq+1:]
		tok.hasAttr = true
	} else {
		tok.name = body
	}
	if tok.name == "" {
		return token{}, literalBracket
	}
	return tok, validToken
}

// closeIndex maps the document offset of every opening "[name" to the
// offset of its matching "[/name]". Between the two, each nested
// "[name]" or "[name=" opens one more level and each "[/name]" closes
// one, so matching is a stack per name built in a single pass.
type closeIndex map[int]int

func indexCloses(s string) closeIndex {
	// each '[' with the next ']', '=' and '[' after it, found from the
	// right so that cutting a name takes constant time
	type bracket struct{ at, rb, eq, lb int }
	var brackets []bracket
	rb, eq, lb := -1, -1, -1
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ']':
			rb = i
		case '=':
			eq = i
		case '[':
			brackets = append(brackets, bracket{at: i, rb: rb, eq: eq, lb: lb})
			lb = i
		}
	}

	idx := make(closeIndex)
	open := make(map[string][]int)
	for j := len(brackets) - 1; j >= 0; j-- {
		br := brackets[j]
		if br.rb < 0 && br.eq < 0 {
			continue
		}

		// names never contain '['
		if s[br.at+1] == '/' {
			if br.rb < 0 || (br.lb >= 0 && br.lb < br.rb) {
				continue
			}
			name := s[br.at+2 : br.rb]
			stack := open[name]
			if name == "" || len(stack) == 0 {
				continue
			}
			idx[stack[len(stack)-1]] = br.at
			open[name] = stack[:len(stack)-1]
			continue
		}

		end := br.rb
		if end < 0 || (br.eq >= 0 && br.eq < end) {
			end = br.eq
		}
		if end == br.at+1 || (br.lb >= 0 && br.lb < end) {
			continue
		}
		name := s[br.at+1 : end]
		open[name] = append(open[name], br.at)
	}
	return idx
}

// lookup returns the bounds, relative to a region s starting at base,
// of the [/name] closing the tag that opens at start. A close beyond
// the region does not count.
func (c closeIndex) lookup(base, start, regionLen int, name string) (int, int, bool) {
	at, ok := c[base+start]
	if !ok {
		return 0, 0, false
	}
	closeStart := at - base
	closeEnd := closeStart + len(name) + 3
	if closeEnd > regionLen {
		return 0, 0, false
	}
	return closeStart, closeEnd, true
}

func convertLineBreaks(s string, xhtml bool) string {
	br := "<br>"
	if xhtml {
		br = "<br />"
	}
	return strings.NewReplacer("\r\n", br+"\r\n", "\n", br+"\n").Replace(s)
}
