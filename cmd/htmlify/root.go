package htmlify

import (
	"embed"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/htmlify/internal/version"
	"github.com/arthur-debert/htmlify/pkg/cobrax/topics"
	"github.com/arthur-debert/htmlify/pkg/config"
	"github.com/arthur-debert/htmlify/pkg/logging"
	"github.com/arthur-debert/htmlify/pkg/ui"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	global := &globalOptions{}
	convertOpts := &convertOptions{}

	rootCmd := &cobra.Command{
		Use:     "htmlify [flags] FILE...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgConvertExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// no files and no subcommand
				_ = cmd.Help()
				return errNoFiles()
			}
			return runConvert(cmd, global, convertOpts, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&global.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&global.format, "format", "auto", MsgFlagFormat)
	convertOpts.addFlags(rootCmd.Flags())
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(MsgGPLNotice + "\n\n" + versionText())

	rootCmd.AddCommand(newConvertCmd(global))
	rootCmd.AddCommand(newTagsCmd(global))
	rootCmd.AddCommand(newConfigCmd(global))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig loads the configuration for a command and makes it the
// global one
func loadConfig(global *globalOptions, overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: global.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}
	config.Initialize(cfg)
	return cfg, nil
}

// newRenderer creates the report renderer selected by --format
func newRenderer(global *globalOptions, w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(global.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}
