package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var startOpts stack.Options

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the stack",
	Long: `Start the stack in the background with docker compose up -d.

Use --attach to follow the application's logs once the stack is up.`,
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runStart,
}

func init() {
	addDebugFlag(startCmd, &startOpts.Debug)
	addAttachFlag(startCmd, &startOpts.Attach)

	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionStart, startOpts)
}
