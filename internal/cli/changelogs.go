package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/skipkayhil/rail-inspector/internal/build"
	"github.com/skipkayhil/rail-inspector/internal/changelog"
	"github.com/skipkayhil/rail-inspector/internal/cli/shared"
	"github.com/skipkayhil/rail-inspector/internal/cli/util"
	"github.com/skipkayhil/rail-inspector/internal/config"
	clierrors "github.com/skipkayhil/rail-inspector/internal/errors"
	"github.com/skipkayhil/rail-inspector/internal/git"
	"github.com/skipkayhil/rail-inspector/internal/inspect"
	"github.com/skipkayhil/rail-inspector/internal/logging"
	"github.com/skipkayhil/rail-inspector/internal/output"
	"github.com/skipkayhil/rail-inspector/internal/progress"
	"github.com/skipkayhil/rail-inspector/internal/report"
	"github.com/skipkayhil/rail-inspector/internal/watch"
)

// changelogsOptions are the resolved settings of one changelogs run.
type changelogsOptions struct {
	format   string
	plain    bool
	jobs     int
	disabled []string
	watch    bool
	files    []string
	glob     string
	debounce time.Duration
}

func newChangelogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "changelogs [RAILS_PATH]",
		Aliases: []string{"cl"},
		Short:   "Lint the CHANGELOG.md files of a Rails checkout (cl)",
		Long: `Lint every framework CHANGELOG.md of a Rails checkout.

With no RAILS_PATH the root of the git repository containing the working
directory is used. Changelogs are found with changelog_glob (default
"*/CHANGELOG.md") and parsed concurrently.

Rules:
  authors              every entry ends with an author line such as "*Jane Doe*"
  leading-whitespace   headers start with "*   " and bodies are indented by four spaces
  trailing-whitespace  no line ends in spaces or tabs

Exit codes:
  0  no offenses
  1  offenses found
  3  invalid arguments or configuration
  4  changelog or repository not found`,
		Example: `  # Lint the current repository
  rail-inspector changelogs

  # Lint a checkout elsewhere, without the authors rule
  rail-inspector changelogs ~/src/rails --disable authors

  # Lint specific files as JSON
  rail-inspector changelogs --file activerecord/CHANGELOG.md --file railties/CHANGELOG.md --format json

  # Re-lint whenever a changelog is saved
  rail-inspector changelogs --watch`,
		GroupID: shared.GroupInspection,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runChangelogs,
	}

	cmd.Flags().StringP("format", "f", "", "Report format: text, json or sarif (default from config)")
	cmd.Flags().Bool("plain", false, "Disable colour and the progress spinner")
	cmd.Flags().IntP("jobs", "j", 0, "Changelogs parsed at once (0 = one per CPU)")
	cmd.Flags().StringSlice("disable", nil, "Rule to skip (repeatable)")
	cmd.Flags().BoolP("watch", "w", false, "Re-lint when a changelog changes")
	cmd.Flags().StringArray("file", nil, "Lint this changelog instead of discovering them (repeatable)")
	return cmd
}

func runChangelogs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.Get(ctx)

	opts, err := resolveChangelogsOptions(cmd)
	if err != nil {
		return err
	}

	// Machine-readable reports own stdout, so status lines go to stderr.
	statusOut := cmd.OutOrStdout()
	if opts.format != report.FormatText {
		statusOut = cmd.ErrOrStderr()
	}
	printer := output.NewPrinter(statusOut, opts.plain)

	fsys, paths, root, err := locateChangelogs(ctx, args, opts)
	if err != nil {
		return err
	}
	printer.Checking(root)

	if rev, err := git.HeadRevision(ctx, root); err == nil {
		log.Debug().Str("root", root).Str("revision", rev).Msg("inspecting checkout")
	}

	reporter, err := report.New(cmd.OutOrStdout(), report.Options{
		Format:        opts.format,
		Plain:         opts.plain,
		DisabledRules: opts.disabled,
		Version:       build.Version,
	})
	if err != nil {
		return clierrors.Wrap(err, clierrors.Argument)
	}

	runner := inspect.NewRunner(fsys, inspect.WithJobs(opts.jobs))
	indicator := newIndicator(cmd.ErrOrStderr(), opts.plain, len(paths))
	log.Debug().
		Int("changelogs", len(paths)).
		Int("jobs", runner.Jobs()).
		Bool("spinner", indicator.Enabled()).
		Msg("starting inspection")

	offenses, err := inspectOnce(ctx, runner, reporter, indicator, paths)
	if err != nil {
		return err
	}

	if opts.watch {
		return watchChangelogs(ctx, cmd, opts, runner, reporter, printer, fsys, root, paths)
	}

	if offenses > 0 {
		return shared.NewExitError(shared.ExitOffenses)
	}
	return nil
}

// resolveChangelogsOptions merges flags over the loaded configuration. A flag
// only wins when it was set on the command line.
func resolveChangelogsOptions(cmd *cobra.Command) (changelogsOptions, error) {
	cfg := shared.ConfigFrom(cmd.Context())
	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return changelogsOptions{}, clierrors.ConfigParseError(config.ProjectConfigPath(), err)
		}
		cfg = loaded
	}

	opts := changelogsOptions{
		format:   cfg.Format,
		plain:    cfg.Plain,
		jobs:     cfg.Jobs,
		disabled: cfg.DisabledRules,
		glob:     cfg.ChangelogGlob,
		debounce: cfg.WatchDebounce,
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.format, _ = flags.GetString("format")
	}
	if flags.Changed("plain") {
		opts.plain, _ = flags.GetBool("plain")
	}
	if flags.Changed("jobs") {
		opts.jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("disable") {
		opts.disabled, _ = flags.GetStringSlice("disable")
	}
	opts.watch, _ = flags.GetBool("watch")
	opts.files, _ = flags.GetStringArray("file")

	if !isValidFormat(opts.format) {
		return opts, clierrors.InvalidFormat(opts.format, report.Formats())
	}
	for _, name := range opts.disabled {
		if !changelog.IsValidRule(name) {
			return opts, clierrors.InvalidRule(name, ruleNames())
		}
	}
	if opts.jobs < 0 {
		return opts, clierrors.NewArgumentError(
			fmt.Sprintf("--jobs must not be negative, got %d", opts.jobs),
			"Use 0 for one parser per CPU",
		)
	}
	return opts, nil
}

// locateChangelogs returns the filesystem to read from, the changelog paths
// on it, and the directory reported as being checked.
func locateChangelogs(ctx context.Context, args []string, opts changelogsOptions) (afero.Fs, []string, string, error) {
	if len(opts.files) > 0 {
		root, err := util.ResolvePath(".")
		if err != nil {
			return nil, nil, "", clierrors.Wrap(err, clierrors.Runtime)
		}
		return afero.NewOsFs(), opts.files, root, nil
	}

	root, err := resolveRoot(ctx, args)
	if err != nil {
		return nil, nil, "", err
	}

	fsys := afero.NewBasePathFs(afero.NewOsFs(), root)
	paths, err := inspect.Discover(fsys, ".", opts.glob)
	if err != nil {
		return nil, nil, "", clierrors.Wrap(err, clierrors.Configuration)
	}
	if len(paths) == 0 {
		return nil, nil, "", clierrors.NoChangelogsFound(root, opts.glob)
	}
	return fsys, paths, root, nil
}

// resolveRoot picks the Rails checkout: the RAILS_PATH argument when given,
// otherwise the repository containing the working directory.
func resolveRoot(ctx context.Context, args []string) (string, error) {
	if len(args) == 1 {
		root, err := util.ResolvePath(args[0])
		if err != nil {
			return "", clierrors.Wrap(err, clierrors.Argument)
		}
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return "", clierrors.NewPrerequisiteError(
				fmt.Sprintf("not a directory: %s", root),
				"Pass the path of a Rails checkout",
			)
		}
		return root, nil
	}

	cwd, err := util.ResolvePath(".")
	if err != nil {
		return "", clierrors.Wrap(err, clierrors.Runtime)
	}
	root, err := git.RepositoryRoot(ctx, cwd)
	if errors.Is(err, git.ErrNotRepository) {
		return "", clierrors.NotARepository(cwd)
	}
	if err != nil {
		return "", clierrors.Wrap(err, clierrors.Runtime)
	}
	return root, nil
}

// inspectOnce parses paths, feeds the reporter and returns the number of
// reported offenses.
func inspectOnce(
	ctx context.Context,
	runner *inspect.Runner,
	reporter *report.Reporter,
	indicator *progress.Indicator,
	paths []string,
) (int, error) {
	indicator.Start(len(paths))
	results, err := runner.Run(ctx, paths)
	if err != nil {
		indicator.Done(false, "Inspection failed")
		var notFound *changelog.NotFoundError
		if errors.As(err, &notFound) {
			return 0, clierrors.ChangelogNotFound(notFound.Path, err)
		}
		return 0, clierrors.Wrap(err, clierrors.Runtime)
	}

	indicator.Done(true, progress.InspectedMessage(len(results)))

	for _, c := range results {
		if err := reporter.Accept(c); err != nil {
			return 0, clierrors.Wrap(err, clierrors.Runtime)
		}
	}
	if err := reporter.Finish(); err != nil {
		return 0, clierrors.Wrap(err, clierrors.Runtime)
	}
	return reporter.OffenseCount(), nil
}

// watchChangelogs re-lints every changelog whenever one of them changes,
// until interrupted. Offenses do not end watch mode.
func watchChangelogs(
	ctx context.Context,
	cmd *cobra.Command,
	opts changelogsOptions,
	runner *inspect.Runner,
	reporter *report.Reporter,
	printer *output.Printer,
	fsys afero.Fs,
	root string,
	paths []string,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, onBase := fsys.(*afero.BasePathFs)
	watched := make([]string, len(paths))
	for i, p := range paths {
		if onBase {
			p = filepath.Join(root, p)
		}
		watched[i] = p
	}

	watcher, err := watch.New(watched, opts.debounce)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	printer.Watching(len(paths))

	log := logging.Get(ctx)
	quiet := progress.NewIndicator(cmd.ErrOrStderr(), progress.TerminalCapabilities{}, false)

	err = watcher.Run(ctx, func(changed []string) {
		printer.Changed(changed)
		reporter.Reset()
		if _, err := inspectOnce(ctx, runner, reporter, quiet, paths); err != nil {
			if cliErr := clierrors.AsCLIError(err); cliErr != nil {
				clierrors.FprintError(cmd.ErrOrStderr(), cliErr, opts.plain)
			}
			log.Warn().Err(err).Msg("re-inspection failed")
		}
	})
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	return nil
}

// newIndicator enables the spinner only on an interactive, coloured stderr
// and when there is more than one changelog to wait for.
func newIndicator(w io.Writer, plain bool, count int) *progress.Indicator {
	f, ok := w.(*os.File)
	if !ok {
		return progress.NewIndicator(w, progress.TerminalCapabilities{}, false)
	}
	caps := progress.DetectTerminalCapabilities(f)
	enabled := caps.IsTTY && caps.SupportsColor && !plain && count > 1
	return progress.NewIndicator(w, caps, enabled)
}

func isValidFormat(format string) bool {
	for _, f := range report.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

func ruleNames() []string {
	rules := changelog.Rules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = string(r)
	}
	return names
}
