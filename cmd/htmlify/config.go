package htmlify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/htmlify/pkg/config"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/ui"
)

func newConfigCmd(global *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			cfg, err := loadConfig(global, nil)
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(global.format)
			if err != nil {
				return err
			}
			if format == ui.FormatJSON {
				renderer, err := ui.NewRenderer(format, out)
				if err != nil {
					return err
				}
				return renderer.RenderResult(cfg)
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			for _, src := range cfg.Sources {
				if _, err := fmt.Fprintf(out, "# source: %s\n", src); err != nil {
					return errors.Wrap(err, errors.ErrFileWrite, "failed to write to stdout")
				}
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
