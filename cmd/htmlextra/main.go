package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/goliatone/go-htmlextra/internal/config"
	"github.com/goliatone/go-htmlextra/internal/state"
	"github.com/goliatone/go-htmlextra/pkg/playground"
)

const appName = "htmlextra"

// set with -ldflags "-X main.version=..."
var version = "dev"

// initializeAppContext prepares application context before command execution
// but after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(cmd.Bool("debug")); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", version), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	env.RestoreStdLog()
	return nil
}

// Errors from subcommands are logged here instead of going through cli.Exit.
var errWasHandled bool

// called before appContext is destroyed, so errors from subcommands are still
// logged properly
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "renders HTML attributes, tags and text markup",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log at debug level with a development logger"},
		},
		Commands: []*cli.Command{
			{
				Name:         "render",
				Usage:        "Renders a template with every helper available",
				OnUsageError: usageErrorHandler,
				Action:       runRender,
				ArgsUsage:    "TEMPLATE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data", Usage: "template data from `FILE` (YAML mapping)"},
				},
			},
			{
				Name:         "attrs",
				Usage:        "Merges the attribute sets of each YAML file and prints the result",
				OnUsageError: usageErrorHandler,
				Action:       runAttrs,
				ArgsUsage:    "FILE...",
			},
			{
				Name:         "markup",
				Usage:        "Applies a markup operation to TEXT, or to STDIN when TEXT is absent",
				OnUsageError: usageErrorHandler,
				Action:       runMarkup,
				ArgsUsage:    "[TEXT]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "op", Value: "highlight", Usage: "`OPERATION` to apply (one of " + operationList() + ")"},
					&cli.StringFlag{Name: "term", Usage: "search `TERM` for contextualize"},
					&cli.IntFlag{Name: "length", Usage: "snippet `LENGTH` for contextualize (default from configuration)"},
					&cli.StringFlag{Name: "sequence", Usage: "control `SEQUENCE` for wrap_text and strip_control_characters"},
					&cli.StringFlag{Name: "tag", Usage: "wrapper element `NAME`"},
					&cli.StringFlag{Name: "class", Usage: "wrapper element class `NAME`"},
					&cli.BoolFlag{Name: "no-breaks", Usage: "paragraphize without <br>"},
					&cli.BoolFlag{Name: "keep-slashes", Usage: "keep backslash escapes in the output"},
				},
			},
			{
				Name:         "playground",
				Usage:        "Interactively tries markup operations",
				OnUsageError: usageErrorHandler,
				Action:       runPlayground,
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps either default or actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}

func runPlayground(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	ext, err := env.Environment()
	if err != nil {
		return err
	}
	driver := playground.NewSurveyDriver(cmd.Root().Writer)
	return playground.NewSession(ext.Extension, driver, env.Log).Run(ctx)
}
