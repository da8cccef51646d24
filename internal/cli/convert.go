package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	raw  string // kind of a raw JSON input document
	json bool   // write a raw JSON document
	save saveFlags
}

// newConvertCmd creates the convert command, which rewrites a heatmap file
// with different envelope settings or as a raw JSON document.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Rewrite a heatmap file with other compression or encoding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.raw, "raw", "", "read a raw JSON document of the given kind: 2d, 3d, 3to2")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write a raw JSON document instead of a saved file")
	addSaveFlags(cmd, &opts.save)

	return cmd
}

func runConvert(ctx context.Context, cmd *cobra.Command, in, out string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := readHeatmap(ctx, source{path: in, in: cmd.InOrStdin(), raw: opts.raw})
	if err != nil {
		return err
	}

	saveOpts, err := configFromContext(ctx).saveOptions(opts.save)
	if err != nil {
		return err
	}

	dst := sink{path: out, out: cmd.OutOrStdout(), json: opts.json, opts: saveOpts}
	if err := writeHeatmap(ctx, dst, s); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Converted %s heatmap with %d cells", s.Header.Flag.Kind, s.Len()))
	if out != stdioPath {
		printSuccess(cmd.OutOrStdout(), "Converted %s", in)
		printFile(cmd.OutOrStdout(), out)
	}

	return nil
}
