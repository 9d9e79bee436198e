package bbcode

// CustomCode wraps the inner content in fixed, caller supplied strings.
// XHTMLOpen and XHTMLClose, when set, replace Open and Close in XHTML mode.
type CustomCode struct {
	name       string
	open       string
	close      string
	xhtmlOpen  string
	xhtmlClose string
}

// CustomOptions holds the strings of a CustomCode
type CustomOptions struct {
	Open       string
	Close      string
	XHTMLOpen  string
	XHTMLClose string
}

// NewCustomCode creates a customized simple code
func NewCustomCode(name string, opts CustomOptions) (*CustomCode, error) {
	canonical, err := CanonicalName(name)
	if err != nil {
		return nil, err
	}
	c := &CustomCode{
		name:       canonical,
		open:       opts.Open,
		close:      opts.Close,
		xhtmlOpen:  opts.XHTMLOpen,
		xhtmlClose: opts.XHTMLClose,
	}
	if c.xhtmlOpen == "" {
		c.xhtmlOpen = c.open
	}
	if c.xhtmlClose == "" {
		c.xhtmlClose = c.close
	}
	return c, nil
}

// Name returns the tag name
func (c *CustomCode) Name() string { return c.name }

// UsesAttribute is always false for customized codes
func (c *CustomCode) UsesAttribute() bool { return false }

// Render wraps inner in the open and close strings for the mode in ctx
func (c *CustomCode) Render(inner, _ string, ctx RenderContext) (string, error) {
	if ctx.XHTML {
		return c.xhtmlOpen + inner + c.xhtmlClose, nil
	}
	return c.open + inner + c.close, nil
}
