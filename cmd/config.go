package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quickstack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  "View the quickstack configuration resolved for the current directory.",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration",
	Long: `Display the application name, shell and cloudpush target quickstack would use here.

Does not contact Docker.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{requiresKey: requiresConfig},
	RunE:        runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// resolvedConfig is the YAML view printed by `config show`
type resolvedConfig struct {
	Name      string          `yaml:"name"`
	Network   string          `yaml:"network"`
	Shell     []string        `yaml:"shell"`
	CloudPush *resolvedTarget `yaml:"cloudpush,omitempty"`
}

type resolvedTarget struct {
	Username string `yaml:"username"`
	Address  string `yaml:"address"`
	Target   string `yaml:"target"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings := dispatcher.Settings()
	cfg := settings.Config
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if cfg != nil {
		// Validate and show errors
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(errOut, "Errors:\n%v\n\n", err)
		}
		for _, w := range cfg.Warnings() {
			fmt.Fprintf(errOut, "Warning: %s\n", w)
		}
	}

	shell, err := cfg.ShellCommand()
	if err != nil {
		return err
	}

	view := resolvedConfig{
		Name:    settings.AppName,
		Network: settings.Network,
		Shell:   shell,
	}
	if cfg != nil && cfg.CloudPush != nil {
		view.CloudPush = &resolvedTarget{
			Username: cfg.CloudPush.Username,
			Address:  cfg.CloudPush.Address,
		}
		if target, err := config.ResolveRemoteTarget(cfg, settings.AppName); err == nil {
			view.CloudPush.Target = target
		}
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return err
	}

	if cfg != nil {
		fmt.Fprintf(out, "# Configuration: %s\n", config.ConfigFileName)
	} else {
		fmt.Fprintf(out, "# No %s file, defaults shown\n", config.ConfigFileName)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, string(data))

	return nil
}
