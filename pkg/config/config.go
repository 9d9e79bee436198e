package config

import (
	"github.com/arthur-debert/htmlify/pkg/bbcode"
	"github.com/arthur-debert/htmlify/pkg/catalog"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/escape"
	"github.com/arthur-debert/htmlify/pkg/parser"
)

// Output modes
const (
	ModeHTML  = "html"
	ModeXHTML = "xhtml"
)

// Config is the complete htmlify configuration
type Config struct {
	Workers int               `koanf:"workers" toml:"workers" json:"workers"`
	Output  Output            `koanf:"output" toml:"output" json:"output"`
	Input   Input             `koanf:"input" toml:"input" json:"input"`
	Links   Links             `koanf:"links" toml:"links" json:"links"`
	Parser  Parser            `koanf:"parser" toml:"parser" json:"parser"`
	Tags    []catalog.TagSpec `koanf:"tags" toml:"tags,omitempty" json:"tags,omitempty"`

	// Sources lists the layers that were loaded, lowest first
	Sources []string `koanf:"-" toml:"-" json:"sources,omitempty"`
}

// Output holds settings for the generated document
type Output struct {
	Mode       string `koanf:"mode" toml:"mode" json:"mode"`
	LineBreaks bool   `koanf:"line_breaks" toml:"line_breaks" json:"lineBreaks"`
	Suffix     string `koanf:"suffix" toml:"suffix" json:"suffix"`
	Validate   bool   `koanf:"validate" toml:"validate" json:"validate"`
}

// Input holds settings applied to the source document before parsing
type Input struct {
	UTF8    bool  `koanf:"utf8" toml:"utf8" json:"utf8"`
	MaxSize int64 `koanf:"max_size" toml:"max_size" json:"maxSize"`
	Escape  bool  `koanf:"escape" toml:"escape" json:"escape"`
}

// Links holds link handling settings
type Links struct {
	TrimPrefix string `koanf:"trim_prefix" toml:"trim_prefix" json:"trimPrefix"`
}

// Parser holds tag parser settings
type Parser struct {
	MaxDepth   int    `koanf:"max_depth" toml:"max_depth" json:"maxDepth"`
	Duplicates string `koanf:"duplicates" toml:"duplicates" json:"duplicates"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	switch c.Output.Mode {
	case ModeHTML, ModeXHTML:
	default:
		return invalid("output.mode", c.Output.Mode, `must be "html" or "xhtml"`)
	}
	if c.Output.Suffix == "" {
		return invalid("output.suffix", c.Output.Suffix, "must not be empty")
	}
	if c.Input.MaxSize <= 0 {
		return invalid("input.max_size", c.Input.MaxSize, "must be positive")
	}
	if c.Parser.MaxDepth <= 0 {
		return invalid("parser.max_depth", c.Parser.MaxDepth, "must be positive")
	}
	switch c.Parser.Duplicates {
	case catalog.DuplicatesReject, catalog.DuplicatesIgnore:
	default:
		return invalid("parser.duplicates", c.Parser.Duplicates, `must be "reject" or "ignore"`)
	}
	if c.Workers < 1 {
		return invalid("workers", c.Workers, "must be at least 1")
	}
	if c.Output.Validate && c.Output.Mode != ModeXHTML {
		return invalid("output.validate", c.Output.Validate, "only applies to xhtml output")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s: %s", key, reason).
		WithDetail("key", key).
		WithDetail("value", value)
}

// RenderContext returns the rendering options for the parser
func (c *Config) RenderContext() bbcode.RenderContext {
	return bbcode.RenderContext{
		XHTML:      c.Output.Mode == ModeXHTML,
		LineBreaks: c.Output.LineBreaks,
	}
}

// CatalogOptions returns the options used to build the tag catalog.
// With input escaping on, links reach the tags escaped, so the trim
// prefix is escaped the same way.
func (c *Config) CatalogOptions() catalog.Options {
	prefix := c.Links.TrimPrefix
	if c.Input.Escape {
		prefix = escape.Text(prefix)
	}
	return catalog.Options{
		TrimPrefix: prefix,
		Duplicates: c.Parser.Duplicates,
		MaxDepth:   c.Parser.MaxDepth,
	}
}

// TagSpecs returns the built-in catalog followed by the configured tags
func (c *Config) TagSpecs() ([]catalog.TagSpec, error) {
	specs, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return append(specs, c.Tags...), nil
}

// BuildParser builds a parser holding every tag of TagSpecs
func (c *Config) BuildParser() (*parser.Parser, error) {
	specs, err := c.TagSpecs()
	if err != nil {
		return nil, err
	}
	return catalog.Build(specs, c.CatalogOptions())
}
