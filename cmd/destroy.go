package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var destroyOpts stack.Options

var destroyCmd = &cobra.Command{
	Use:         "destroy",
	Short:       "Destroys the stack",
	Long:        `Stop and remove the stack's containers and networks with docker compose down.`,
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runDestroy,
}

func init() {
	addDebugFlag(destroyCmd, &destroyOpts.Debug)

	rootCmd.AddCommand(destroyCmd)
}

func runDestroy(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionDestroy, destroyOpts)
}
