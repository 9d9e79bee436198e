// Package catalog describes tag definitions as data and builds parsers
// from them. The built-in catalog ships embedded in the binary; users
// can append their own tags through the configuration file.
package catalog

import (
	_ "embed"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/htmlify/pkg/bbcode"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/logging"
	"github.com/arthur-debert/htmlify/pkg/parser"
	"github.com/arthur-debert/htmlify/pkg/template"
)

//go:embed catalog.toml
var catalogData []byte

// Tag kinds
const (
	KindSimple   = "simple"
	KindCustom   = "custom"
	KindTemplate = "template"
)

// Duplicate handling policies
const (
	DuplicatesReject = "reject"
	DuplicatesIgnore = "ignore"
)

// TagSpec describes one tag definition
type TagSpec struct {
	Name             string `toml:"name" koanf:"name" json:"name"`
	Kind             string `toml:"kind" koanf:"kind" json:"kind"`
	Open             string `toml:"open,omitempty" koanf:"open" json:"open,omitempty"`
	Close            string `toml:"close,omitempty" koanf:"close" json:"close,omitempty"`
	XHTMLOpen        string `toml:"xhtml_open,omitempty" koanf:"xhtml_open" json:"xhtml_open,omitempty"`
	XHTMLClose       string `toml:"xhtml_close,omitempty" koanf:"xhtml_close" json:"xhtml_close,omitempty"`
	Template         string `toml:"template,omitempty" koanf:"template" json:"template,omitempty"`
	Inner            string `toml:"inner,omitempty" koanf:"inner" json:"inner,omitempty"`
	Attribute        string `toml:"attribute,omitempty" koanf:"attribute" json:"attribute,omitempty"`
	RequireAttribute bool   `toml:"require_attribute,omitempty" koanf:"require_attribute" json:"require_attribute,omitempty"`
	Trim             bool   `toml:"trim,omitempty" koanf:"trim" json:"trim,omitempty"`
	EscapeAmpersands bool   `toml:"escape_ampersands,omitempty" koanf:"escape_ampersands" json:"escape_ampersands,omitempty"`
	Description      string `toml:"description,omitempty" koanf:"description" json:"description,omitempty"`
}

// Usage returns how the tag is written, e.g. "[url=...]...[/url]"
func (s TagSpec) Usage() string {
	name := strings.ToLower(s.Name)
	if s.RequireAttribute {
		return "[" + name + "=...]...[/" + name + "]"
	}
	return "[" + name + "]...[/" + name + "]"
}

type catalogFile struct {
	Tags []TagSpec `toml:"tags"`
}

// Default returns the built-in tag catalog
func Default() ([]TagSpec, error) {
	return Decode(catalogData)
}

// MustDefault is like Default but panics if the embedded catalog is broken
func MustDefault() []TagSpec {
	specs, err := Default()
	if err != nil {
		panic(err)
	}
	return specs
}

// Decode reads a catalog in TOML form
func Decode(data []byte) ([]TagSpec, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode tag catalog")
	}
	return f.Tags, nil
}

// Encode writes specs in the same TOML form Decode reads
func Encode(specs []TagSpec) ([]byte, error) {
	data, err := toml.Marshal(catalogFile{Tags: specs})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode tag catalog")
	}
	return data, nil
}

// Options controls how a catalog is turned into a parser
type Options struct {
	// TrimPrefix is removed from link targets of tags marked trim.
	// Empty disables trimming.
	TrimPrefix string

	// Duplicates is DuplicatesReject (default) or DuplicatesIgnore
	Duplicates string

	// MaxDepth limits tag nesting; zero keeps the parser default
	MaxDepth int
}

// Build creates a parser holding one definition per spec, in order.
// Template errors are fatal. A spec repeating an earlier name and form
// fails the build under DuplicatesReject and is skipped with a warning
// under DuplicatesIgnore.
func Build(specs []TagSpec, opts Options) (*parser.Parser, error) {
	logger := logging.GetLogger("catalog")

	switch opts.Duplicates {
	case "", DuplicatesReject, DuplicatesIgnore:
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown duplicates policy %q", opts.Duplicates)
	}

	p := parser.New(parser.WithMaxDepth(opts.MaxDepth))
	templates := make(map[string]*template.Template)

	for i, spec := range specs {
		code, err := newCode(spec, opts.TrimPrefix, templates)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid tag #%d (%q)", i+1, spec.Name)
		}

		if err := p.Register(code); err != nil {
			if errors.IsErrorCode(err, errors.ErrAlreadyExists) && opts.Duplicates == DuplicatesIgnore {
				logger.Warn().Str("tag", spec.Usage()).Msg("Ignoring duplicate tag definition")
				continue
			}
			return nil, err
		}
	}

	logger.Debug().
		Int("tags", len(p.Codes())).
		Bool("trimming", opts.TrimPrefix != "").
		Msg("Built tag catalog")
	return p, nil
}

// NewCode creates the definition described by spec
func NewCode(spec TagSpec, trimPrefix string) (bbcode.Code, error) {
	return newCode(spec, trimPrefix, nil)
}

func newCode(spec TagSpec, trimPrefix string, templates map[string]*template.Template) (bbcode.Code, error) {
	if spec.Trim && spec.Kind != KindTemplate {
		return nil, errors.Newf(errors.ErrInvalidTag, "only template tags can be trimmed, %q is %s", spec.Name, spec.Kind)
	}

	switch spec.Kind {
	case KindSimple:
		code, err := bbcode.NewSimpleCode(spec.Name)
		if err != nil {
			return nil, err
		}
		return code, nil

	case KindCustom:
		code, err := bbcode.NewCustomCode(spec.Name, bbcode.CustomOptions{
			Open:       spec.Open,
			Close:      spec.Close,
			XHTMLOpen:  spec.XHTMLOpen,
			XHTMLClose: spec.XHTMLClose,
		})
		if err != nil {
			return nil, err
		}
		return code, nil

	case KindTemplate:
		tpl, err := loadTemplate(spec.Template, templates)
		if err != nil {
			return nil, err
		}
		code, err := bbcode.NewTemplateCode(spec.Name, tpl, bbcode.TemplateOptions{
			Inner:            spec.Inner,
			Attribute:        spec.Attribute,
			RequireAttribute: spec.RequireAttribute,
			EscapeAmpersands: spec.EscapeAmpersands,
		})
		if err != nil {
			return nil, err
		}
		if spec.Trim && trimPrefix != "" {
			trimming, err := bbcode.NewTrimmingCode(code, trimPrefix)
			if err != nil {
				return nil, err
			}
			return trimming, nil
		}
		return code, nil

	default:
		return nil, errors.Newf(errors.ErrInvalidTag, "unknown tag kind %q", spec.Kind).
			WithDetail("tag", spec.Name)
	}
}

// loadTemplate shares one Template between specs with the same pattern
func loadTemplate(pattern string, cache map[string]*template.Template) (*template.Template, error) {
	if tpl, ok := cache[pattern]; ok {
		return tpl, nil
	}
	tpl, err := template.Load(pattern)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		cache[pattern] = tpl
	}
	return tpl, nil
}
