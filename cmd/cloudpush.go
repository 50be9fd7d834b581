package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var cloudpushOpts stack.Options

var cloudpushCmd = &cobra.Command{
	Use:   "cloudpush",
	Short: "Deploys the stack to the cloud",
	Long: `Push the working directory to the remote host configured in .qs with rsync.

The files land in /home/<username>/<name>, or /root/<name> for root.
target, venv and node_modules directories are never pushed.`,
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runCloudPush,
}

func init() {
	addDebugFlag(cloudpushCmd, &cloudpushOpts.Debug)

	rootCmd.AddCommand(cloudpushCmd)
}

func runCloudPush(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionCloudPush, cloudpushOpts)
}
