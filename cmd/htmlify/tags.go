package htmlify

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/htmlify/pkg/catalog"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/ui/report"
)

func newTagsCmd(global *globalOptions) *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: MsgTagsShort,
		Long:  MsgTagsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global, nil)
			if err != nil {
				return err
			}
			specs, err := cfg.TagSpecs()
			if err != nil {
				return err
			}
			// configured tags that cannot be built are reported here
			// rather than on the next conversion
			if _, err := cfg.BuildParser(); err != nil {
				return err
			}

			if asTOML {
				data, err := catalog.Encode(specs)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return errors.Wrap(err, errors.ErrFileWrite, "failed to write to stdout")
				}
				return nil
			}

			renderer, err := newRenderer(global, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(report.NewTags(specs, len(catalog.MustDefault())))
		},
	}
	cmd.Flags().BoolVar(&asTOML, "toml", false, MsgFlagTOML)
	return cmd
}
