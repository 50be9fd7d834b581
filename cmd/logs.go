package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var logsCmd = &cobra.Command{
	Use:         "logs",
	Short:       "View application logs",
	Long:        `Follow the logs of the application service until interrupted.`,
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionLogs, stack.Options{})
}
