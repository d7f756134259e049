package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/crucible-sh/crucible/pkg/logging"
)

var (
	verbose bool

	logSession *logging.Session
)

var rootCmd = &cobra.Command{
	Use:   "crucible",
	Short: "Crucible: a prompt blueprint library for your clipboard",
	Long: `Crucible manages a catalog of prompt blueprints (markdown templates)
and copies the one you pick to the system clipboard. Your last choice is
remembered, so the next run skips the prompt entirely.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Diagnostics go to a session log file so stdout stays clean for
		// listings and prompts. Failure to open the file degrades to stderr.
		logSession, _ = logging.Init(os.Getenv("CRUCIBLE_LOG_DIR"), verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func closeLogging() {
	if logSession != nil {
		_ = logSession.Close()
	}
}
