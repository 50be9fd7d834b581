package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-shellwords"
)

const (
	// MaxNameLen bounds the application name, which doubles as a compose service name
	MaxNameLen = 63
)

var (
	validName     = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)
	validUsername = regexp.MustCompile(`^[a-z_][a-z0-9_.-]*\$?$`)
)

// ValidationError collects multiple validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s",
		strings.Join(e.Errors, "\n  - "))
}

// Add appends a validation error message
func (e *ValidationError) Add(msg string) {
	e.Errors = append(e.Errors, msg)
}

// HasErrors returns true if there are any validation errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the config for semantic errors
func (c *Config) Validate() error {
	errs := &ValidationError{}

	// Name is optional; when set it must be usable as a compose service name
	if name := strings.TrimSpace(c.Name); name != "" {
		if !validName.MatchString(name) {
			errs.Add("name must start with a letter or digit and contain only letters, digits, '.', '_' or '-'")
		}
		if len(name) > MaxNameLen {
			errs.Add(fmt.Sprintf("name cannot exceed %d characters", MaxNameLen))
		}
	}

	if c.CloudPush != nil {
		if c.CloudPush.Username == "" {
			errs.Add("cloudpush.username is required")
		} else if !validUsername.MatchString(c.CloudPush.Username) {
			errs.Add("cloudpush.username is not a valid user name")
		}

		if c.CloudPush.Address == "" {
			errs.Add("cloudpush.address is required")
		} else if strings.ContainsAny(c.CloudPush.Address, " \t@/") {
			errs.Add("cloudpush.address must be a bare host name or IP address")
		}
	}

	if strings.TrimSpace(c.Shell) != "" {
		if _, err := shellwords.Parse(c.Shell); err != nil {
			errs.Add(fmt.Sprintf("shell cannot be parsed: %v", err))
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Warnings returns non-fatal issues (call after Validate)
func (c *Config) Warnings() []string {
	var warnings []string
	if c.CloudPush != nil && c.CloudPush.Username == "root" {
		warnings = append(warnings, "cloudpush.username is root, files will be pushed to /root")
	}
	return warnings
}
