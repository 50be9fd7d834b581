package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var restartOpts stack.Options

var restartCmd = &cobra.Command{
	Use:         "restart",
	Short:       "Restarts the entire stack",
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runRestart,
}

func init() {
	addDebugFlag(restartCmd, &restartOpts.Debug)
	addAttachFlag(restartCmd, &restartOpts.Attach)

	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionRestart, restartOpts)
}
