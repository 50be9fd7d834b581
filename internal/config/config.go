package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the name of the quickstack config file
	ConfigFileName = ".qs"
	// DefaultShell is the command opened by `quickstack ssh` when no shell is configured
	DefaultShell = "/bin/bash"
)

// Config represents the optional .qs document
type Config struct {
	Name      string     `mapstructure:"name" yaml:"name,omitempty"`
	CloudPush *CloudPush `mapstructure:"cloudpush" yaml:"cloudpush,omitempty"`
	Shell     string     `mapstructure:"shell" yaml:"shell,omitempty"`
}

// CloudPush contains the remote host used by `quickstack cloudpush`
type CloudPush struct {
	Username string `mapstructure:"username" yaml:"username"`
	Address  string `mapstructure:"address" yaml:"address"`
}

// Exists checks if a config file exists in the directory
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// Load reads the config from the specified directory
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, configPath, err)
	}
	if !v.IsSet("cloudpush") {
		cfg.CloudPush = nil
	}

	return &cfg, nil
}

// LoadOptional reads the config if present. A missing file yields a nil config.
func LoadOptional(dir string) (*Config, error) {
	if !Exists(dir) {
		return nil, nil
	}
	return Load(dir)
}

// ApplicationName returns the configured name as written, or the base name of
// dir when the name is blank.
func ApplicationName(dir string, cfg *Config) (string, error) {
	if cfg != nil {
		if strings.TrimSpace(cfg.Name) != "" {
			return cfg.Name, nil
		}
	}

	base := filepath.Base(filepath.Clean(dir))
	switch base {
	case "", ".", string(filepath.Separator):
		return "", fmt.Errorf("%w: working directory %q has no base name", ErrNameResolution, dir)
	}
	return base, nil
}

// RemoteDir returns the directory the application is pushed to on the remote host
func (c *CloudPush) RemoteDir(app string) string {
	if c.Username == "root" {
		return "/root/" + app
	}
	return "/home/" + c.Username + "/" + app
}

// RemoteTarget returns the rsync destination for app, as user@host:path
func (c *CloudPush) RemoteTarget(app string) string {
	return c.Username + "@" + c.Address + ":" + c.RemoteDir(app)
}

// ResolveRemoteTarget returns the cloudpush destination for app.
// It fails with ErrMissingCloudConfig when cfg or its cloudpush section is absent.
func ResolveRemoteTarget(cfg *Config, app string) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("%w: no %s file", ErrMissingCloudConfig, ConfigFileName)
	}
	if cfg.CloudPush == nil {
		return "", fmt.Errorf("%w: %s has no cloudpush section", ErrMissingCloudConfig, ConfigFileName)
	}
	if cfg.CloudPush.Username == "" || cfg.CloudPush.Address == "" {
		return "", fmt.Errorf("%w: cloudpush requires username and address", ErrMissingCloudConfig)
	}
	return cfg.CloudPush.RemoteTarget(app), nil
}

// ShellCommand returns the command used to open a shell in the application container
func (c *Config) ShellCommand() ([]string, error) {
	if c == nil || strings.TrimSpace(c.Shell) == "" {
		return []string{DefaultShell}, nil
	}

	words, err := shellwords.Parse(c.Shell)
	if err != nil {
		return nil, fmt.Errorf("invalid shell %q: %w", c.Shell, err)
	}
	if len(words) == 0 {
		return []string{DefaultShell}, nil
	}
	return words, nil
}
