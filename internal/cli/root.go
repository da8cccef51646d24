package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the heatmapctl CLI with os.Args and returns an error if any
// command fails.
//
// Logging:
//   - Default: info level, or log_level from the config file (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and the loaded config are attached to the context and reach every
// command through loggerFromContext and configFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Log output goes to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "heatmapctl",
		Short:         "heatmapctl generates, inspects and converts sparse heatmaps",
		Long:          `heatmapctl works with sparse integer-lattice heatmaps stored as run-length JSON documents, either raw or wrapped in a compressed, checksummed envelope.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := newLogger(logOut, cfg.logLevel(verbose))
			if configPath != "" {
				logger.Debug("Loaded config", "path", configPath)
			}

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("heatmapctl %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with default settings")

	root.AddCommand(newGenCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newRenderCmd())

	return root
}
