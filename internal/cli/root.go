package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/goentity/internal/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "goentity",
		Short:        "goentity: render documents through declared entity exposures",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(logger.Config{Writer: cmd.ErrOrStderr(), Debug: debug})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	cmd.AddCommand(renderCmd(), inspectCmd())
	return cmd
}
