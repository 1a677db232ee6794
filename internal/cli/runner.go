// Package cli wires flags, configuration and logging around a todo session
// and hands it to the interactive front end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

// Options tune behavior from root flags.
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Theme      string // overrides the config file when set
	NoColor    bool
}

// Session is everything a launcher needs to run one todo session.
type Session struct {
	Controller *todo.Controller
	Config     *config.Config
	Theme      ui.Theme
	Logger     zerolog.Logger
}

// Launcher drives a session until the user is done with it.
type Launcher func(ctx context.Context, s *Session) error

// Run executes the tada command and returns an exit code (0 ok, 1 error).
func Run(ctx context.Context, args []string) int {
	if err := NewCommand(RunTUI).Run(ctx, args); err != nil {
		ui.Fail(os.Stderr, ui.DefaultTheme(), err.Error())
		return 1
	}
	return 0
}

// NewCommand builds the root command. launch is called once setup succeeds.
func NewCommand(launch Launcher) *cli.Command {
	opts := &Options{}

	return &cli.Command{
		Name:      "tada",
		Usage:     "Keep a quick todo list for the length of a terminal session",
		UsageText: "tada [global options]",
		Description: `tada opens an interactive todo list. Type to draft a todo and press enter
to add it. Press tab to move to the list, space to toggle, d to delete,
c to clear completed todos and 1/2/3 or f to switch filters.

Nothing is saved: the list starts empty every time.`,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (.yml, .yaml or .toml)",
				Sources:     cli.EnvVars("TADA_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &opts.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal)",
				Sources:     cli.EnvVars("TADA_LOG_LEVEL"),
				Value:       "info",
				Destination: &opts.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logging is off when empty)",
				Sources:     cli.EnvVars("TADA_LOG_FILE"),
				Destination: &opts.LogFile,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme (classic, neon, mono)",
				Sources:     cli.EnvVars("TADA_THEME"),
				Destination: &opts.Theme,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable colored output",
				Sources:     cli.EnvVars("TADA_NO_COLOR"),
				Destination: &opts.NoColor,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unexpected argument %q. Run 'tada --help' for usage", c.Args().First())
			}
			return run(ctx, c, opts, launch)
		},
	}
}

func run(ctx context.Context, c *cli.Command, opts *Options, launch Launcher) error {
	logger, closer, err := logging.New(opts.LogLevel, opts.LogFile)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer closer()

	cfg, err := config.Load(opts.ConfigPath, opts.Theme)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	theme, err := ui.NewTheme(cfg.Theme)
	if err != nil {
		return err
	}
	ui.SetColorMode(theme, opts.NoColor)

	ctrl := todo.NewController(todo.WithIDGenerator(todo.NewIDGenerator(cfg.IDScheme)))
	ctrl.Subscribe(logging.Events(logger))

	logger.Info().
		Str("theme", theme.Name).
		Str("id_scheme", cfg.IDScheme).
		Str("config", opts.ConfigPath).
		Msg("session started")

	if err := launch(ctx, &Session{Controller: ctrl, Config: cfg, Theme: theme, Logger: logger}); err != nil {
		logger.Error().Err(err).Msg("session failed")
		return err
	}

	logger.Info().
		Int("total", ctrl.TotalCount()).
		Int("completed", ctrl.CompletedCount()).
		Msg("session ended")
	ui.OK(c.Root().Writer, theme, fmt.Sprintf("session ended: %d total, %d completed",
		ctrl.TotalCount(), ctrl.CompletedCount()))
	return nil
}

// RunTUI runs the Bubble Tea program on the controlling terminal.
func RunTUI(ctx context.Context, s *Session) error {
	out := int(os.Stdout.Fd())
	if !term.IsTerminal(out) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("tada needs an interactive terminal")
	}
	w, h, err := term.GetSize(out)
	if err != nil {
		s.Logger.Debug().Err(err).Msg("terminal size unknown, using defaults")
		w, h = 0, 0
	}

	m := tui.New(s.Controller, s.Theme, tui.Options{
		Placeholder:   s.Config.Placeholder,
		CharLimit:     s.Config.CharLimit,
		ProgressWidth: s.Config.ProgressWidth,
		Width:         w,
		Height:        h,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.Config.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
