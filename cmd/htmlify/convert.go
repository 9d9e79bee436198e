package htmlify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/htmlify/pkg/convert"
	"github.com/arthur-debert/htmlify/pkg/document"
	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/filesystem"
	"github.com/arthur-debert/htmlify/pkg/ui/report"
)

func newConvertCmd(global *globalOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:     "convert [flags] FILE...",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoFiles()
			}
			return runConvert(cmd, global, opts, args)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func errNoFiles() error {
	return errors.New(errors.ErrInvalidInput, MsgErrNoFiles)
}

// runConvert converts args with the settings from config and flags and
// reports every processed file
func runConvert(cmd *cobra.Command, global *globalOptions, opts *convertOptions, args []string) error {
	overrides, err := opts.overrides(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(global, overrides)
	if err != nil {
		return err
	}

	p, err := cfg.BuildParser()
	if err != nil {
		return err
	}

	store := document.NewStore(filesystem.NewOS(),
		document.WithMaxSize(cfg.Input.MaxSize),
		document.WithSuffix(cfg.Output.Suffix))

	converter := convert.New(p, store, cfg.RenderContext(), convert.Options{
		UTF8:     cfg.Input.UTF8,
		Escape:   cfg.Input.Escape,
		Validate: cfg.Output.Validate,
		NoWrite:  opts.stdout,
		Workers:  cfg.Workers,
	})

	results, runErr := converter.Run(cmd.Context(), args)

	// with --stdout the documents own stdout
	reportOut := cmd.OutOrStdout()
	if opts.stdout {
		reportOut = cmd.ErrOrStderr()
		for _, r := range results {
			if _, err := fmt.Fprint(cmd.OutOrStdout(), r.Content); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write to stdout")
			}
		}
	}

	renderer, err := newRenderer(global, reportOut)
	if err != nil {
		return err
	}
	rep := &report.Conversion{Mode: cfg.Output.Mode, Files: results}
	if runErr != nil {
		if len(results) == 0 {
			return runErr
		}
		rep.Error = runErr.Error()
	}
	if err := renderer.RenderResult(rep); err != nil {
		return err
	}
	return runErr
}
