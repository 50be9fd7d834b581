package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var deployOpts stack.Options

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Builds the application image and then immediately starts the stack",
	Long: `Build the application images, then start the stack.

The stack is not started if the build fails.`,
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runDeploy,
}

func init() {
	addDebugFlag(deployCmd, &deployOpts.Debug)
	addAttachFlag(deployCmd, &deployOpts.Attach)
	addCleanFlag(deployCmd, &deployOpts.Clean)

	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionDeploy, deployOpts)
}
