package bbcode

// SimpleCode renders [name]inner[/name] as <name>inner</name>
type SimpleCode struct {
	name string
}

// NewSimpleCode creates a simple code for the given tag name
func NewSimpleCode(name string) (*SimpleCode, error) {
	canonical, err := CanonicalName(name)
	if err != nil {
		return nil, err
	}
	return &SimpleCode{name: canonical}, nil
}

// Name returns the tag name
func (c *SimpleCode) Name() string { return c.name }

// UsesAttribute is always false for simple codes
func (c *SimpleCode) UsesAttribute() bool { return false }

// Render wraps inner in the HTML element of the same name
func (c *SimpleCode) Render(inner, _ string, _ RenderContext) (string, error) {
	return "<" + c.name + ">" + inner + "</" + c.name + ">", nil
}
