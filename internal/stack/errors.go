package stack

import (
	"errors"
	"fmt"

	"quickstack/internal/process"
)

// ErrRuntimeUnreachable is returned when `docker info` fails
var ErrRuntimeUnreachable = errors.New("container runtime is not reachable")

// ErrNetworkSetup is returned when the shared bridge network cannot be created
var ErrNetworkSetup = errors.New("failed to create shared network")

// ErrCommandFailed is returned when an external command exits non-zero
var ErrCommandFailed = errors.New("external command failed")

// CommandError describes a non-zero exit from an external command
type CommandError struct {
	Command string
	Code    int
	Output  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// Unwrap allows errors.Is(err, ErrCommandFailed)
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

func commandError(name string, args []string, res process.Result) *CommandError {
	return &CommandError{
		Command: process.CommandLine(name, args),
		Code:    res.Code,
		Output:  res.Output,
	}
}

// ActionError is the single fatal outcome of an action. Message is the line
// shown to the user; Err is the cause.
type ActionError struct {
	Action  string
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func fail(action, message string, err error) *ActionError {
	return &ActionError{Action: action, Message: message, Err: err}
}
