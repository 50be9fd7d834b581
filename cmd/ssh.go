package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "SSH into an application container in the Docker stack",
	Long: `Open an interactive shell in the application container with docker compose exec.

The shell defaults to /bin/bash and can be changed with the "shell" key in .qs.`,
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runSSH,
}

func init() {
	rootCmd.AddCommand(sshCmd)
}

func runSSH(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionSSH, stack.Options{})
}
