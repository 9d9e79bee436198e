// Package convert runs the conversion pipeline: read a document, adjust
// its encoding, escape it, convert its tags and write the result.
package convert

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/htmlify/pkg/bbcode"
	"github.com/arthur-debert/htmlify/pkg/charset"
	"github.com/arthur-debert/htmlify/pkg/document"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/escape"
	"github.com/arthur-debert/htmlify/pkg/logging"
	"github.com/arthur-debert/htmlify/pkg/parser"
	"github.com/arthur-debert/htmlify/pkg/xhtml"
)

// Options selects the pipeline stages
type Options struct {
	// UTF8 converts input from UTF-8 to ISO-8859-15 before parsing
	UTF8 bool
	// Escape escapes & < > " before parsing
	Escape bool
	// Validate checks that the output is well-formed XML
	Validate bool
	// NoWrite keeps output in FileResult.Content instead of writing it
	NoWrite bool
	// Workers is the number of files converted at once; < 1 means 1
	Workers int
}

// FileResult describes one converted file
type FileResult struct {
	Input       string              `json:"input"`
	Output      string              `json:"output,omitempty"`
	InputBytes  int                 `json:"inputBytes"`
	OutputBytes int                 `json:"outputBytes"`
	Diagnostics []parser.Diagnostic `json:"diagnostics,omitempty"`
	Duration    time.Duration       `json:"duration"`

	// Content is the converted text when Options.NoWrite is set
	Content string `json:"-"`
}

// Converter converts documents with a fixed parser and settings
type Converter struct {
	parser *parser.Parser
	store  *document.Store
	render bbcode.RenderContext
	opts   Options
	logger zerolog.Logger
}

// New creates a converter
func New(p *parser.Parser, store *document.Store, render bbcode.RenderContext, opts Options) *Converter {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Converter{
		parser: p,
		store:  store,
		render: render,
		opts:   opts,
		logger: logging.GetLogger("convert"),
	}
}

// ConvertString runs the in-memory stages on text
func (c *Converter) ConvertString(text string) (*parser.Result, error) {
	if c.opts.UTF8 {
		latin, err := charset.ToLatin9(text)
		if err != nil {
			return nil, err
		}
		text = latin
	}
	if c.opts.Escape {
		text = escape.Text(text)
	}

	result := c.parser.ParseDocument(text, c.render)

	if c.opts.Validate {
		if err := c.validate(result.Output); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (c *Converter) validate(output string) error {
	if c.opts.UTF8 {
		// XML is read as UTF-8
		decoded, err := charset.FromLatin9(output)
		if err != nil {
			return err
		}
		output = decoded
	}
	return xhtml.Check(output)
}

// ConvertFile reads path, converts it and writes the output file
func (c *Converter) ConvertFile(path string) (*FileResult, error) {
	start := time.Now()

	content, err := c.store.Read(path)
	if err != nil {
		return nil, err
	}

	result, err := c.ConvertString(content)
	if err != nil {
		return nil, withPath(err, path)
	}

	fr := &FileResult{
		Input:       path,
		InputBytes:  len(content),
		OutputBytes: len(result.Output),
		Diagnostics: result.Diagnostics,
	}
	if c.opts.NoWrite {
		fr.Content = result.Output
	} else {
		out, err := c.store.Write(path, result.Output)
		if err != nil {
			return nil, err
		}
		fr.Output = out
	}
	fr.Duration = time.Since(start)

	c.logger.Info().
		Str("input", path).
		Str("output", fr.Output).
		Int("diagnostics", len(fr.Diagnostics)).
		Dur("duration", fr.Duration).
		Msg("Processed file")
	return fr, nil
}

// Run converts every path. Paths are checked up front; a missing or
// repeated path fails the run before anything is converted. The first
// conversion error stops the remaining work. Results of the files that
// were converted are returned in input order, also on error.
func (c *Converter) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	if err := c.store.Check(paths); err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(
		c.logger.With().Int("files", len(paths)).Int("workers", c.opts.Workers).Logger(),
		"convert")
	defer done()

	slots := make([]*FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fr, err := c.ConvertFile(path)
			if err != nil {
				return err
			}
			slots[i] = fr
			return nil
		})
	}
	err := g.Wait()

	results := make([]FileResult, 0, len(paths))
	for _, fr := range slots {
		if fr != nil {
			results = append(results, *fr)
		}
	}
	return results, err
}

// withPath names the file a conversion error belongs to
func withPath(err error, path string) error {
	var herr *errors.HtmlifyError
	if stderrors.As(err, &herr) {
		return herr.WithDetail("path", path)
	}
	return errors.Wrapf(err, errors.ErrInternal, "failed to convert %s", path)
}
