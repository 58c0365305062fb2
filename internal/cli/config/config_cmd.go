// Package config provides the CLI commands for inspecting configuration.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skipkayhil/rail-inspector/internal/cli/shared"
	cfgpkg "github.com/skipkayhil/rail-inspector/internal/config"
)

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect rail-inspector configuration",
		Long: `Inspect rail-inspector configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (RAIL_INSPECTOR_*)
  2. Project config (.rail-inspector.yml)
  3. User config ($XDG_CONFIG_HOME/rail-inspector/config.yml)
  4. Built-in defaults`,
		Example: `  # Show the effective configuration
  rail-inspector config show

  # Print a commented starter config
  rail-inspector config template > .rail-inspector.yml`,
		GroupID: shared.GroupConfiguration,
	}

	cmd.AddCommand(newShowCmd(), newTemplateCmd(), newPathCmd())
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := shared.ConfigFrom(cmd.Context())
	if cfg == nil {
		var err error
		if cfg, err = cfgpkg.Load(""); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		data, err := json.MarshalIndent(cfg.Map(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	data, err := yaml.Marshal(cfg.Map())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a commented config file with every option",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), cfgpkg.GetDefaultConfigTemplate())
		},
	}
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file locations that are searched",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if user, err := cfgpkg.UserConfigPath(); err == nil {
				fmt.Fprintf(out, "user:    %s\n", user)
			}
			fmt.Fprintf(out, "project: %s\n", cfgpkg.ProjectConfigPath())
			fmt.Fprintf(out, "legacy:  %s\n", cfgpkg.LegacyProjectConfigPath())
		},
	}
}
