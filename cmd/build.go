package cmd

import (
	"github.com/spf13/cobra"

	"quickstack/internal/stack"
)

var buildOpts stack.Options

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the application image",
	Long: `Build the application images with docker compose build.

Output from docker is hidden unless --debug is set.
Use --clean to build without the layer cache.`,
	Args:        cobra.NoArgs,
	Annotations: stackCommand(),
	RunE:        runBuild,
}

func init() {
	addDebugFlag(buildCmd, &buildOpts.Debug)
	addCleanFlag(buildCmd, &buildOpts.Clean)

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	return dispatcher.Dispatch(cmd.Context(), stack.ActionBuild, buildOpts)
}
