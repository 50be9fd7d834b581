package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var stopOpts stack.Options

var stopCmd = &cobra.Command{
	Use:         "stop",
	Short:       "Stops the stack",
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runStop,
}

func init() {
	addDebugFlag(stopCmd, &stopOpts.Debug)

	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionStop, stopOpts)
}
