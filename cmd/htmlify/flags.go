package htmlify

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/arthur-debert/htmlify/pkg/config"
	"github.com/arthur-debert/htmlify/pkg/errors"
)

// globalOptions are the persistent flags of the root command
type globalOptions struct {
	verbosity  int
	configFile string
	format     string
}

// convertOptions are the conversion flags, shared by the root command
// and the convert command
type convertOptions struct {
	html       onceBool
	xhtml      onceBool
	trim       onceString
	utf8       onceBool
	lineBreaks bool
	suffix     string
	stdout     bool
	validate   bool
	workers    int
	noEscape   bool
}

func (o *convertOptions) addFlags(flags *pflag.FlagSet) {
	flags.Var(&o.html, "html", MsgFlagHTML)
	flags.Lookup("html").NoOptDefVal = "true"
	flags.Var(&o.xhtml, "xhtml", MsgFlagXHTML)
	flags.Lookup("xhtml").NoOptDefVal = "true"
	flags.Var(&o.trim, "trim", MsgFlagTrim)
	flags.Var(&o.utf8, "utf8", MsgFlagUTF8)
	flags.Lookup("utf8").NoOptDefVal = "true"

	flags.BoolVar(&o.lineBreaks, "line-breaks", false, MsgFlagLineBreaks)
	flags.StringVar(&o.suffix, "suffix", "", MsgFlagSuffix)
	flags.BoolVar(&o.stdout, "stdout", false, MsgFlagStdout)
	flags.BoolVar(&o.validate, "validate", false, MsgFlagValidate)
	flags.IntVar(&o.workers, "workers", 0, MsgFlagWorkers)
	flags.BoolVar(&o.noEscape, "no-escape", false, MsgFlagNoEscape)
}

// overrides returns the config values set by flags given on the
// command line
func (o *convertOptions) overrides(flags *pflag.FlagSet) (map[string]interface{}, error) {
	if o.html.set && o.xhtml.set {
		return nil, errors.New(errors.ErrInvalidInput, "--html and --xhtml are mutually exclusive")
	}

	m := make(map[string]interface{})
	switch {
	case o.xhtml.set && o.xhtml.value:
		m["output.mode"] = config.ModeXHTML
	case o.html.set || o.xhtml.set:
		m["output.mode"] = config.ModeHTML
	}
	if o.trim.set {
		m["links.trim_prefix"] = o.trim.value
	}
	if o.utf8.set {
		m["input.utf8"] = o.utf8.value
	}
	if flags.Changed("line-breaks") {
		m["output.line_breaks"] = o.lineBreaks
	}
	if flags.Changed("suffix") {
		m["output.suffix"] = o.suffix
	}
	if flags.Changed("validate") {
		m["output.validate"] = o.validate
	}
	if flags.Changed("workers") {
		m["workers"] = o.workers
	}
	if flags.Changed("no-escape") {
		m["input.escape"] = !o.noEscape
	}
	return m, nil
}

// onceString is a string flag that may be given only once
type onceString struct {
	value string
	set   bool
}

func (s *onceString) String() string { return s.value }
func (s *onceString) Type() string   { return "string" }

func (s *onceString) Set(v string) error {
	if s.set {
		return errors.New(errors.ErrInvalidInput, MsgErrFlagTwice)
	}
	s.value, s.set = v, true
	return nil
}

// onceBool is a boolean flag that may be given only once
type onceBool struct {
	value bool
	set   bool
}

func (b *onceBool) String() string   { return strconv.FormatBool(b.value) }
func (b *onceBool) Type() string     { return "bool" }
func (b *onceBool) IsBoolFlag() bool { return true }

func (b *onceBool) Set(v string) error {
	if b.set {
		return errors.New(errors.ErrInvalidInput, MsgErrFlagTwice)
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid boolean")
	}
	b.value, b.set = parsed, true
	return nil
}

// normalizeFlagName accepts the spellings of the original command line
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "html4":
		name = "html"
	case "XHTML":
		name = "xhtml"
	case "UTF-8":
		name = "utf8"
	}
	return pflag.NormalizedName(name)
}
