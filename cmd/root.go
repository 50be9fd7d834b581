package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quickstack/internal/config"
	"quickstack/internal/process"
	"quickstack/internal/report"
	"quickstack/internal/stack"
)

const (
	// requiresKey annotates commands with what must be prepared before they run
	requiresKey = "quickstack/requires"
	// requiresRuntime: docker reachable, shared network present, config resolved
	requiresRuntime = "runtime"
	// requiresConfig: config resolved only
	requiresConfig = "config"
)

var rootCmd = &cobra.Command{
	Use:   "quickstack",
	Short: "Build, run and push docker compose application stacks",
	Long: `quickstack drives docker compose for the application in the current directory.

Every stack command first checks that Docker is reachable and that the shared
"` + stack.NetworkName + `" bridge network exists.

An optional .qs JSON file in the working directory can set the application
name and the cloudpush target:

  {"name": "myapp", "cloudpush": {"username": "deploy", "address": "1.2.3.4"}}`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
}

var (
	log      = logrus.New()
	reporter = report.New(os.Stdout, !color.NoColor)

	// Replaced in tests
	runner          process.Runner = process.NewExecRunner(log)
	workDir                        = os.Getwd
	stdinIsTerminal                = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

	// dispatcher is built by prepare for the running command
	dispatcher *stack.Dispatcher
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
}

// Execute runs the root command and exits the process with its status
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
// It is the only place a failure is printed.
func run(ctx context.Context, args []string) int {
	resetContexts(rootCmd)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)

	// An interrupt ends the invocation silently
	if ctx.Err() != nil {
		return 0
	}
	if err != nil {
		reporter.Fail("%s", err)
		return 1
	}
	return 0
}

// resetContexts clears contexts left by an earlier execution; cobra only
// hands ctx down to subcommands that have none
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil)
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}

// prepare resolves settings and, for stack commands, checks the runtime and
// ensures the shared network before the command runs
func prepare(cmd *cobra.Command, args []string) error {
	requires := cmd.Annotations[requiresKey]
	if requires == "" {
		return nil
	}

	if debugEnabled(cmd) {
		log.SetLevel(logrus.DebugLevel)
	}

	if requires == requiresRuntime {
		ctx := cmd.Context()
		base := stack.NewDispatcher(runner, reporter, stack.Settings{})
		if err := base.Preflight(ctx); err != nil {
			return err
		}
		if err := base.EnsureNetwork(ctx); err != nil {
			return err
		}
	}

	settings, err := resolveSettings()
	if err != nil {
		return err
	}
	dispatcher = stack.NewDispatcher(runner, reporter, settings)
	return nil
}

// resolveSettings reads the optional .qs file and derives the application name
func resolveSettings() (stack.Settings, error) {
	dir, err := workDir()
	if err != nil {
		return stack.Settings{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return stack.Settings{}, err
	}

	name, err := config.ApplicationName(dir, cfg)
	if err != nil {
		return stack.Settings{}, err
	}

	log.WithFields(logrus.Fields{
		"dir":    dir,
		"app":    name,
		"config": cfg != nil,
	}).Debug("resolved settings")

	return stack.Settings{
		AppName: name,
		Config:  cfg,
		TTY:     stdinIsTerminal(),
	}, nil
}

// stackCommand marks a command as needing the container runtime
func stackCommand() map[string]string {
	return map[string]string{requiresKey: requiresRuntime}
}

// addDebugFlag registers -d/--debug
func addDebugFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, "debug", "d", false, "Enable debugging output")
}

// addAttachFlag registers -a/--attach
func addAttachFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, "attach", "a", false, "Attach to logging output from application")
}

// addCleanFlag registers -c/--clean
func addCleanFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, "clean", "c", false, "Build application image without cache")
}

func debugEnabled(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup("debug")
	return f != nil && f.Value.String() == "true"
}
