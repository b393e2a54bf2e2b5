// Package cli is the robo command tree. With no subcommand it opens the
// interactive TUI; the subcommands cover scripted generation, history and
// credential management.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/robo/internal/app"
	"github.com/Makepad-fr/robo/internal/config"
	"github.com/Makepad-fr/robo/internal/generator"
	"github.com/Makepad-fr/robo/internal/history"
	"github.com/Makepad-fr/robo/internal/logging"
	"github.com/Makepad-fr/robo/internal/store/jsonstore"
	"github.com/Makepad-fr/robo/internal/tui"
	"github.com/Makepad-fr/robo/internal/ui"
)

// Env is everything a command needs, built once per invocation.
type Env struct {
	Config  *config.Config
	Log     *zap.Logger
	History *history.Store
	Ctrl    *app.Controller
}

// Loader builds the Env. Tests swap in an in-memory one.
type Loader func() (*Env, error)

// Load wires configuration, logging, the history store and the generator.
func Load() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.LogPath())
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	cfg.SetLogger(log)
	kv, err := jsonstore.Open(cfg.StoreDir())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	hist := history.New(kv, history.WithLogger(log))
	hist.Load()

	client := generator.NewClient(cfg.Credential, generator.EinoFactory(generator.ModelSettings{
		BaseURL:     cfg.Model.BaseURL,
		Model:       cfg.Model.Name,
		Timeout:     cfg.Model.Timeout,
		Temperature: cfg.Temperature(),
	}), log)

	return &Env{
		Config:  cfg,
		Log:     log,
		History: hist,
		Ctrl:    app.New(client, hist, app.WithLogger(log)),
	}, nil
}

var runTUI = func(ctx context.Context, env *Env) error {
	return tui.Run(env.Ctrl, tui.Options{
		Context:   ctx,
		Logger:    env.Log,
		ExportDir: env.Config.ExportDir(),
	})
}

// usageError marks bad invocations; Main maps it to exit code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error { return usageError{fmt.Errorf(format, a...)} }

// withUsage turns cobra argument validation failures into usage errors.
func withUsage(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := args(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}

type rootFlags struct {
	theme   string
	noColor bool
}

// NewRoot builds the command tree. load is called lazily, so --help and
// usage errors never touch the disk.
func NewRoot(load Loader) *cobra.Command {
	var (
		flags rootFlags
		env   *Env
	)
	getEnv := func(cmd *cobra.Command) (*Env, error) {
		if env != nil {
			return env, nil
		}
		e, err := load()
		if err != nil {
			return nil, err
		}
		theme := e.Config.Theme
		if cmd.Flags().Changed("theme") {
			theme = flags.theme
		}
		ui.SetTheme(theme)
		if flags.noColor {
			ui.SetColorForcing(false, true)
		}
		env = e
		return env, nil
	}

	root := &cobra.Command{
		Use:           "robo",
		Short:         "Robo AI - business plan generator",
		Long:          "Describe a business and get a structured, sectioned business plan back.\nRun without arguments for the interactive terminal UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := getEnv(cmd)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), e)
		},
	}
	root.PersistentPostRun = func(*cobra.Command, []string) {
		if env != nil {
			_ = env.Log.Sync()
		}
	}
	root.PersistentFlags().StringVar(&flags.theme, "theme", "classic", "output theme: classic, neon or mono")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	root.AddCommand(
		generateCmd(getEnv),
		inspireCmd(),
		historyCmd(getEnv),
		authCmd(getEnv),
	)
	return root
}

// Main runs the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Main(ctx context.Context, args []string, stdout, stderr io.Writer, load Loader) int {
	root := NewRoot(load)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ui.C(ui.Current().Muted, "Run `robo --help` for usage."))
		return 2
	}
	return 1
}

// Execute is the production entry point.
func Execute() int {
	return Main(context.Background(), os.Args[1:], os.Stdout, os.Stderr, Load)
}
