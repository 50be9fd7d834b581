package stack

import (
	"context"
	"fmt"

	"quickstack/internal/config"
	"quickstack/internal/process"
	"quickstack/internal/report"
)

// Action names a top-level quickstack operation
type Action string

const (
	ActionBuild     Action = "build"
	ActionStart     Action = "start"
	ActionDeploy    Action = "deploy"
	ActionRestart   Action = "restart"
	ActionStop      Action = "stop"
	ActionDestroy   Action = "destroy"
	ActionLogs      Action = "logs"
	ActionSSH       Action = "ssh"
	ActionCloudPush Action = "cloudpush"
)

// Actions lists every action in the order they are documented
var Actions = []Action{
	ActionBuild, ActionStart, ActionDeploy, ActionRestart, ActionStop,
	ActionDestroy, ActionLogs, ActionSSH, ActionCloudPush,
}

// Options are the per-invocation flags
type Options struct {
	// Debug streams command output instead of capturing it
	Debug bool
	// Clean builds images without the build cache
	Clean bool
	// Attach follows application logs after start/restart
	Attach bool
}

// Settings are resolved once per invocation and never change afterwards
type Settings struct {
	// AppName is the compose service the logs and ssh actions target
	AppName string
	// Config is the parsed .qs document, nil when absent
	Config *config.Config
	// Docker and Rsync are the binaries invoked
	Docker string
	Rsync  string
	// Network is the shared bridge network ensured before stack actions
	Network string
	// TTY is set when stdin is an interactive terminal
	TTY bool
}

// Dispatcher runs quickstack actions as ordered sequences of external commands
type Dispatcher struct {
	runner   process.Runner
	report   *report.Reporter
	settings Settings
}

// NewDispatcher creates a dispatcher. Empty binary and network settings get defaults.
func NewDispatcher(runner process.Runner, rep *report.Reporter, settings Settings) *Dispatcher {
	if settings.Docker == "" {
		settings.Docker = "docker"
	}
	if settings.Rsync == "" {
		settings.Rsync = "rsync"
	}
	if settings.Network == "" {
		settings.Network = NetworkName
	}
	return &Dispatcher{
		runner:   runner,
		report:   rep,
		settings: settings,
	}
}

// Settings returns the resolved settings
func (d *Dispatcher) Settings() Settings {
	return d.settings
}

// Dispatch runs the named action
func (d *Dispatcher) Dispatch(ctx context.Context, action Action, opts Options) error {
	switch action {
	case ActionBuild:
		return d.Build(ctx, opts)
	case ActionStart:
		return d.Start(ctx, opts)
	case ActionDeploy:
		return d.Deploy(ctx, opts)
	case ActionRestart:
		return d.Restart(ctx, opts)
	case ActionStop:
		return d.Stop(ctx, opts)
	case ActionDestroy:
		return d.Destroy(ctx, opts)
	case ActionLogs:
		return d.Logs(ctx)
	case ActionSSH:
		return d.SSH(ctx)
	case ActionCloudPush:
		return d.CloudPush(ctx, opts)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

// Preflight checks that the container runtime answers `docker info`
func (d *Dispatcher) Preflight(ctx context.Context) error {
	args := infoArgs()
	res := d.runner.Run(ctx, d.settings.Docker, args, false)
	if !res.Success() {
		return fail("preflight",
			"Unable to reach Docker - is it running? Do you need to run quickstack as root?",
			fmt.Errorf("%w: %w", ErrRuntimeUnreachable, commandError(d.settings.Docker, args, res)))
	}
	return nil
}

// EnsureNetwork creates the shared bridge network if it does not exist yet.
// Concurrent invocations may both attempt the create.
func (d *Dispatcher) EnsureNetwork(ctx context.Context) error {
	if res := d.runner.Run(ctx, d.settings.Docker, networkInspectArgs(d.settings.Network), false); res.Success() {
		return nil
	}

	d.report.Warn("Container network doesn't exist yet...")
	args := networkCreateArgs(d.settings.Network)
	res := d.runner.Run(ctx, d.settings.Docker, args, false)
	if !res.Success() {
		return fail("network", "Failed to create container network!",
			fmt.Errorf("%w: %w", ErrNetworkSetup, commandError(d.settings.Docker, args, res)))
	}
	d.report.Success("Container network created!")
	return nil
}

// docker runs a docker subcommand and wraps a non-zero exit in an ActionError
func (d *Dispatcher) docker(ctx context.Context, action Action, message string, args []string, stream bool) error {
	res := d.runner.Run(ctx, d.settings.Docker, args, stream)
	if !res.Success() {
		return fail(string(action), message, commandError(d.settings.Docker, args, res))
	}
	return nil
}

// Build builds the application images
func (d *Dispatcher) Build(ctx context.Context, opts Options) error {
	d.report.Info("Building application images...")
	if opts.Clean {
		d.report.Warn("Building without cache")
	}
	if err := d.docker(ctx, ActionBuild,
		"Failed to build application images! Try running with --debug for more details",
		buildArgs(opts.Clean), opts.Debug); err != nil {
		return err
	}
	d.report.Success("Successfully built application images!")
	return nil
}

// Start brings the stack up detached, then optionally follows the application logs
func (d *Dispatcher) Start(ctx context.Context, opts Options) error {
	d.report.Info("Starting stack...")
	if err := d.docker(ctx, ActionStart, "Failed to start stack!", upArgs(), opts.Debug); err != nil {
		return err
	}
	d.report.Success("Successfully started stack!")
	if opts.Attach {
		d.follow(ctx)
	}
	return nil
}

// Deploy builds and then starts. A failed build never starts the stack.
func (d *Dispatcher) Deploy(ctx context.Context, opts Options) error {
	if err := d.Build(ctx, opts); err != nil {
		return err
	}
	return d.Start(ctx, opts)
}

// Restart restarts every service, then optionally follows the application logs
func (d *Dispatcher) Restart(ctx context.Context, opts Options) error {
	d.report.Info("Restarting stack...")
	if err := d.docker(ctx, ActionRestart, "Failed to restart stack!", composeArgs("restart"), opts.Debug); err != nil {
		return err
	}
	d.report.Success("Successfully restarted stack!")
	if opts.Attach {
		d.follow(ctx)
	}
	return nil
}

// Stop stops the stack's containers
func (d *Dispatcher) Stop(ctx context.Context, opts Options) error {
	d.report.Info("Stopping stack...")
	if err := d.docker(ctx, ActionStop, "Failed to stop stack!", composeArgs("stop"), opts.Debug); err != nil {
		return err
	}
	d.report.Success("Successfully stopped stack!")
	return nil
}

// Destroy removes the stack's containers and networks
func (d *Dispatcher) Destroy(ctx context.Context, opts Options) error {
	d.report.Info("Destroying stack...")
	if err := d.docker(ctx, ActionDestroy, "Failed to destroy stack!", composeArgs("down"), opts.Debug); err != nil {
		return err
	}
	d.report.Success("Successfully destroyed stack!")
	return nil
}

// Logs follows the application's logs in the foreground
func (d *Dispatcher) Logs(ctx context.Context) error {
	return d.docker(ctx, ActionLogs, "Failed to get logs from application",
		logsArgs(d.settings.AppName), true)
}

// follow tails the application logs after start/restart. Its exit status is ignored.
func (d *Dispatcher) follow(ctx context.Context) {
	d.runner.Run(ctx, d.settings.Docker, logsArgs(d.settings.AppName), true)
}

// SSH opens an interactive shell in the application container.
// Any non-zero exit counts as a failure.
func (d *Dispatcher) SSH(ctx context.Context) error {
	shell, err := d.settings.Config.ShellCommand()
	if err != nil {
		return fail(string(ActionSSH), "Failed to SSH into application: "+err.Error(), err)
	}

	args := execArgs(d.settings.AppName, d.settings.TTY, shell)
	res := d.runner.Run(ctx, d.settings.Docker, args, true)
	if !res.Success() {
		return fail(string(ActionSSH),
			fmt.Sprintf("Failed to SSH into application (exit status %d)", res.Code),
			commandError(d.settings.Docker, args, res))
	}
	return nil
}

// CloudPush rsyncs the working directory to the configured remote host.
// Configuration problems are reported before rsync is ever spawned.
func (d *Dispatcher) CloudPush(ctx context.Context, opts Options) error {
	if d.settings.Config == nil {
		return fail(string(ActionCloudPush), "QuickStack config file is required for cloudpush", config.ErrConfigMissing)
	}

	target, err := config.ResolveRemoteTarget(d.settings.Config, d.settings.AppName)
	if err != nil {
		return fail(string(ActionCloudPush), "Unable to resolve cloudpush target: "+err.Error(), err)
	}

	d.report.Info("Pushing to %s", target)
	args := rsyncArgs(target)
	res := d.runner.Run(ctx, d.settings.Rsync, args, opts.Debug)
	if !res.Success() {
		return fail(string(ActionCloudPush), "Failed to push to "+target, commandError(d.settings.Rsync, args, res))
	}
	d.report.Success("Pushed files to %s", target)
	return nil
}
