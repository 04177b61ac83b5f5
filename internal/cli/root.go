package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diagraph/diagraph/pkg/buildinfo"
	"github.com/diagraph/diagraph/pkg/config"
)

// Execute runs the diagraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render,
// preview, icons, completion), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	cfg, cfgErr := config.Load()

	root := &cobra.Command{
		Use:          "diagraph",
		Short:        "Diagraph renders declarative architecture diagrams",
		Long:         `Diagraph turns a small declarative description of a system topology - nodes, nested clusters, and directed relationships - into a laid-out diagram image via Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if cfgErr != nil {
				logger.Warnf("Config not loaded: %v", cfgErr)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newPreviewCmd(cfg))
	root.AddCommand(newIconsCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
