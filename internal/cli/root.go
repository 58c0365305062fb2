// Package cli wires the rail-inspector commands together.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	configcmd "github.com/skipkayhil/rail-inspector/internal/cli/config"
	"github.com/skipkayhil/rail-inspector/internal/cli/shared"
	"github.com/skipkayhil/rail-inspector/internal/cli/util"
	"github.com/skipkayhil/rail-inspector/internal/config"
	clierrors "github.com/skipkayhil/rail-inspector/internal/errors"
	"github.com/skipkayhil/rail-inspector/internal/logging"
)

// NewRootCmd creates the rail-inspector root command with every subcommand
// attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rail-inspector",
		Short: "Lint the CHANGELOG files of a Rails checkout",
		Long: `rail-inspector checks the CHANGELOG.md files of a Rails checkout for
entries without an author line and for stray whitespace.

Each framework changelog is parsed into entries. Every entry must end with a
line of authors such as "*Jane Doe*", its header must start with "*   " and
its body must be indented by four spaces.

Source: ` + util.SourceURL,
		Example: `  # Lint the repository you are in
  rail-inspector changelogs

  # Lint another checkout
  rail-inspector changelogs ~/src/rails

  # Lint one file and print SARIF
  rail-inspector changelogs --file activerecord/CHANGELOG.md --format sarif`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadSettings,
	}

	cmd.AddGroup(
		&cobra.Group{ID: shared.GroupInspection, Title: "Inspection Commands:"},
		&cobra.Group{ID: shared.GroupConfiguration, Title: "Configuration Commands:"},
	)

	cmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: .rail-inspector.yml)")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	cmd.AddCommand(
		newChangelogsCmd(),
		configcmd.NewConfigCmd(),
		util.NewVersionCmd(),
	)
	return cmd
}

// loadSettings loads configuration and the logger into the command context
// before any subcommand runs.
func loadSettings(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: configPath,
		WarningWriter:     cmd.ErrOrStderr(),
	})
	if err != nil {
		path := configPath
		if path == "" {
			path = config.ProjectConfigPath()
		}
		return clierrors.ConfigParseError(path, err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}
	if debug {
		level = logging.DebugLevel
	}

	ctx, err := logging.New(cmd.Context(), logging.Config{
		Writer:  cmd.ErrOrStderr(),
		File:    cfg.LogFile,
		Level:   level,
		NoColor: cfg.Plain || color.NoColor,
	})
	if err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}

	logging.Get(ctx).Debug().
		Str("format", cfg.Format).
		Int("jobs", cfg.Jobs).
		Strs("disabled_rules", cfg.DisabledRules).
		Msg("configuration loaded")

	cmd.SetContext(shared.WithConfig(ctx, cfg))
	return nil
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return shared.ExitSuccess
	}
	return reportError(stderr, err)
}

// reportError prints err and picks the exit code for it. Offense exits are
// silent since the report already explains them.
func reportError(w io.Writer, err error) int {
	var exitErr *shared.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	plain := color.NoColor
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.FprintError(w, cliErr, plain)
		switch cliErr.Category {
		case clierrors.Argument, clierrors.Configuration:
			return shared.ExitInvalidArguments
		case clierrors.Prerequisite:
			return shared.ExitMissingDependency
		default:
			return shared.ExitOffenses
		}
	}

	// Anything else comes from cobra's own flag and argument parsing.
	fmt.Fprint(w, clierrors.FormatSimpleError(err, clierrors.Argument))
	return shared.ExitInvalidArguments
}
