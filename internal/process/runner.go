package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of one external command
type Result struct {
	// Code is the exit status. -1 means the process could not be started.
	Code int
	// Output holds combined stdout/stderr when the command was not streamed
	Output string
	// Err is the underlying error from os/exec, if any
	Err error
}

// Success reports whether the command exited with status 0
func (r Result) Success() bool {
	return r.Code == 0
}

// Runner executes external commands
type Runner interface {
	// Run spawns name with args and blocks until it exits.
	// When stream is true the child inherits the terminal; otherwise its
	// combined output is captured into Result.Output.
	Run(ctx context.Context, name string, args []string, stream bool) Result
}

// ExecRunner runs real processes via os/exec
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    *logrus.Logger
}

// NewExecRunner returns an ExecRunner attached to the process's standard streams
func NewExecRunner(log *logrus.Logger) *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    log,
	}
}

// Run spawns the command and waits for it. There is no timeout. Only captured
// commands are killed when ctx is cancelled.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, stream bool) Result {
	if r.Log != nil {
		r.Log.WithField("stream", stream).Debugf("+ %s", CommandLine(name, args))
	}

	var cmd *exec.Cmd
	var out bytes.Buffer
	if stream {
		// Streamed children share the terminal and get its signals directly;
		// Ctrl-C inside an ssh session must not kill the session.
		cmd = exec.Command(name, args...)
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	} else {
		cmd = exec.CommandContext(ctx, name, args...)
		cmd.Stdout = &out
		cmd.Stderr = &out
	}

	err := cmd.Run()
	res := Result{Code: 0, Output: out.String(), Err: err}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Code = exitErr.ExitCode()
		} else {
			res.Code = -1
		}
	}

	if r.Log != nil && !res.Success() {
		r.Log.WithFields(logrus.Fields{
			"command":       name,
			"code":          res.Code,
			logrus.ErrorKey: res.Err,
		}).Debug("command failed")
	}

	return res
}

// CommandLine formats name and args as a single shell-like string
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			parts = append(parts, shellQuote(arg))
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
