package cli

import (
	"fmt"
	"strings"

	"postboard/internal/config"
	"postboard/internal/format"
	"postboard/internal/loader"
	"postboard/internal/logging"
	"postboard/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type App struct {
	Config     config.Config
	ConfigPath string
	PrettyJSON bool

	// log is set in PersistentPreRunE; the TUI swaps it for a file logger.
	log zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{Config: config.Default(), log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:          "postboard",
		Short:        "Browse and edit posts from a REST endpoint (in memory)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  postboard

  # Scriptable commands
  postboard posts list --format text

  # Direct post lookup (shortcut for: postboard posts show <id>)
  postboard 7
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Resolve(&app.Config, app.ConfigPath, changedFlags(cmd.Flags())); err != nil {
			return err
		}
		lvl, err := app.Config.Level()
		if err != nil {
			return err
		}
		app.log = logging.New(cmd.ErrOrStderr(), lvl)
		return nil
	}

	d := config.Default()
	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", "", "Config file (TOML, or YAML by extension; default ~/.postboard/config.toml when present)")
	pf.StringVar(&app.Config.URL, config.FlagURL, d.URL, "Posts endpoint (GET, JSON array)")
	pf.StringVar(&app.Config.IDs, config.FlagIDs, d.IDs, "Id policy for new posts (length|monotonic)")
	pf.StringVar(&app.Config.LogFile, config.FlagLogFile, d.LogFile, "Write logs to this file (the TUI logs nowhere otherwise)")
	pf.StringVar(&app.Config.LogLevel, config.FlagLogLevel, d.LogLevel, "Log level (debug|info|warn|error)")
	pf.StringVar(&app.Config.Format, config.FlagFormat, d.Format, "Output format (json|text)")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newPostsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	lvl, err := app.Config.Level()
	if err != nil {
		return err
	}
	log, closeLog, err := logging.Open(app.Config.LogFile, lvl)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = closeLog() }()

	return tui.Run(tui.Options{
		Loader:   newLoader(app, log),
		IDPolicy: app.Config.IDPolicy(),
		Log:      log,
	})
}

func newLoader(app *App, log zerolog.Logger) *loader.Loader {
	return loader.New(app.Config.URL, loader.WithLogger(log))
}

func changedFlags(fs *pflag.FlagSet) map[string]bool {
	changed := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Config.Format, app.PrettyJSON)
}
