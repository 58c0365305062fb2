// Package util provides small CLI commands and helpers shared by the root
// command.
package util

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skipkayhil/rail-inspector/internal/build"
	"github.com/skipkayhil/rail-inspector/internal/cli/shared"
)

// SourceURL is the project source URL.
const SourceURL = "https://github.com/skipkayhil/rail-inspector"

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for rail-inspector",
		Example: `  # Show version info
  rail-inspector version

  # Plain output (for scripts)
  rail-inspector version --plain`,
		GroupID: shared.GroupConfiguration,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if plain {
				printPlainVersion(cmd.OutOrStdout())
			} else {
				printPrettyVersion(cmd.OutOrStdout())
			}
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting.
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "rail-inspector %s\n", build.Version)
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s\n", build.Platform())
}

func printPrettyVersion(w io.Writer) {
	label := color.New(color.FgCyan).SprintFunc()
	name := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", name("rail-inspector"), build.Version)
	if build.IsDevBuild() {
		fmt.Fprintln(w, color.New(color.Faint).Sprint("(development build)"))
	}
	fmt.Fprintf(w, "  %s %s\n", label("commit:  "), build.Commit)
	fmt.Fprintf(w, "  %s %s\n", label("built:   "), build.BuildDate)
	fmt.Fprintf(w, "  %s %s\n", label("go:      "), runtime.Version())
	fmt.Fprintf(w, "  %s %s\n", label("platform:"), build.Platform())
	fmt.Fprintf(w, "  %s %s\n", label("source:  "), SourceURL)
}
