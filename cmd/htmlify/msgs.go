package htmlify

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Convert BBCode markup to HTML or XHTML"
	MsgConvertShort    = "Convert files and write FILE_htmlified next to each"
	MsgTagsShort       = "List the tags htmlify converts"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/htmlify/htmlify.toml or ./.htmlify.toml)"
	MsgFlagFormat     = "Report format: auto, term, text or json"
	MsgFlagHTML       = "Write HTML (4.01) syntax (default)"
	MsgFlagXHTML      = "Write XHTML syntax; excludes --html"
	MsgFlagTrim       = "Remove PREFIX from link targets that start with it"
	MsgFlagUTF8       = "Input is UTF-8 and is converted to ISO-8859-15 first"
	MsgFlagLineBreaks = "Convert newlines to <br> / <br />"
	MsgFlagSuffix     = "Suffix appended to input names to form output names"
	MsgFlagStdout     = "Print converted documents instead of writing files"
	MsgFlagValidate   = "Check that XHTML output is well-formed"
	MsgFlagWorkers    = "Number of files converted in parallel"
	MsgFlagNoEscape   = "Do not escape & < > \" in the input"
	MsgFlagTOML       = "Print tags in config file format"
	MsgFlagDefaults   = "Print a commented template of all settings"

	// Status messages
	MsgVersionFormat = "htmlify version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoFiles   = "no input files given, use --help to get a list of valid parameters"
	MsgErrFlagTwice = "must not occur more than once"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/tags-long.txt
	msgTagsLongRaw string
	MsgTagsLong    = strings.TrimSpace(msgTagsLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/gpl-notice.txt
	msgGPLNoticeRaw string
	MsgGPLNotice    = strings.TrimSpace(msgGPLNoticeRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
