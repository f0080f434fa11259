// Package app wires configuration, the beverage menu and the machine into
// the coffeemachine command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/coffeemachine/internal/beverage"
	"github.com/agbru/coffeemachine/internal/cli"
	"github.com/agbru/coffeemachine/internal/config"
	apperrors "github.com/agbru/coffeemachine/internal/errors"
	"github.com/agbru/coffeemachine/internal/logging"
	"github.com/agbru/coffeemachine/internal/menu"
	"github.com/agbru/coffeemachine/internal/metrics"
	"github.com/agbru/coffeemachine/internal/orchestration"
	"github.com/agbru/coffeemachine/internal/order"
	"github.com/agbru/coffeemachine/internal/tracing"
	"github.com/agbru/coffeemachine/internal/tui"
	"github.com/agbru/coffeemachine/internal/ui"
)

const defaultProgramName = "coffeemachine"

// Application is a configured coffeemachine invocation.
type Application struct {
	Config    config.AppConfig
	Menu      menu.Menu
	Logger    logging.Logger
	ErrWriter io.Writer
	In        io.Reader

	programName string
	isTerminal  func(io.Writer) bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the default console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used by the interactive session.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New parses args (program name first) and loads the menu file, if any.
// Usage and parse errors are written to errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter:   errWriter,
		In:          os.Stdin,
		programName: defaultProgramName,
		isTerminal:  cli.IsTerminal,
	}
	for _, opt := range opts {
		opt(app)
	}

	var cmdArgs []string
	if len(args) > 0 {
		app.programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(app.programName, cmdArgs, errWriter, menu.Default().Names())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	app.Menu = menu.Default()
	if cfg.MenuFile != "" {
		overlay, err := menu.Load(cfg.MenuFile)
		if err != nil {
			fmt.Fprintln(errWriter, err)
			return nil, err
		}
		app.Menu = menu.Merge(app.Menu, overlay)
	}

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	return app, nil
}

// Run executes the mode selected by the configuration and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	if err := logging.SetLevel(a.Config.LogLevel); err != nil {
		return apperrors.HandleRunError(apperrors.NewConfigError("%v", err), a.ErrWriter, cli.CLIColorProvider{})
	}

	if a.Config.ListMenu {
		cli.DisplayMenu(a.Menu, out)
		return apperrors.ExitSuccess
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var recorder *metrics.Recorder
	gatherer := metrics.NewRegistry()
	if a.Config.MetricsFile != "" {
		var err error
		if recorder, err = metrics.NewRecorder(gatherer); err != nil {
			return apperrors.HandleRunError(err, a.ErrWriter, cli.CLIColorProvider{})
		}
	}

	var code int
	switch {
	case a.Config.Interactive:
		code = a.runInteractive(out, recorder)
	case a.Config.TUI:
		code = a.runTUI(ctx, recorder)
	default:
		code = a.runBrew(ctx, out, recorder)
	}

	if recorder != nil {
		if err := metrics.WriteTextfile(a.Config.MetricsFile, gatherer); err != nil {
			a.Logger.Error("failed to write metrics", err, logging.String("path", a.Config.MetricsFile))
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}
	return code
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.programName, a.Menu.Names()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// newRegistry registers the menu with the given brewing steps.
func (a *Application) newRegistry(steps beverage.Steps) *order.Registry {
	r := order.NewRegistry()
	a.Menu.Register(r, steps)
	return r
}

// newMachine builds a machine carrying the observers common to every mode
// followed by extra.
func (a *Application) newMachine(logger logging.Logger, recorder *metrics.Recorder, extra ...orchestration.OrderStateObserver) *orchestration.Machine {
	m := orchestration.NewMachine(
		orchestration.WithLogger(logger),
		orchestration.WithObservers(orchestration.NewLoggingObserver(logger)),
	)
	if recorder != nil {
		m.AddObserver(recorder)
	}
	if a.Config.Trace {
		m.AddObserver(tracing.New())
	}
	for _, obs := range extra {
		m.AddObserver(obs)
	}
	return m
}

// runBrew queues the configured orders, drains the machine once and prints
// the summary.
func (a *Application) runBrew(ctx context.Context, out io.Writer, recorder *metrics.Recorder) int {
	var steps beverage.Steps = beverage.NewLoggingSteps(a.Logger)
	var view orchestration.OrderStateObserver
	switch {
	case a.Config.Quiet:
	case a.Config.Verbose:
		steps = cli.NewConsoleSteps(out)
		view = cli.NewConsoleObserver(out)
	case a.isTerminal(out):
		view = cli.NewSpinnerObserver(out)
	default:
		view = cli.NewConsoleObserver(out)
	}

	var extra []orchestration.OrderStateObserver
	if view != nil {
		extra = append(extra, view)
	}
	registry := a.newRegistry(steps)
	machine := a.newMachine(a.Logger, recorder, extra...)

	if err := orchestration.RequestByName(machine, registry, a.Config.Orders); err != nil {
		return apperrors.HandleRunError(err, a.ErrWriter, cli.CLIColorProvider{})
	}
	if err := ctx.Err(); err != nil {
		return apperrors.HandleRunError(err, a.ErrWriter, cli.CLIColorProvider{})
	}

	start := time.Now()
	err := machine.Start()
	var presenter orchestration.SummaryPresenter = cli.CLISummaryPresenter{}
	presenter.PresentSummary(orchestration.CycleSummary{
		Orders:   len(a.Config.Orders),
		Duration: time.Since(start),
		Err:      err,
	}, out)
	return apperrors.HandleRunError(err, a.ErrWriter, cli.CLIColorProvider{})
}

func (a *Application) runInteractive(out io.Writer, recorder *metrics.Recorder) int {
	var steps beverage.Steps = beverage.NewLoggingSteps(a.Logger)
	if a.Config.Verbose {
		steps = cli.NewConsoleSteps(out)
	}
	registry := a.newRegistry(steps)

	var view orchestration.OrderStateObserver = cli.NewConsoleObserver(out)
	if a.Config.Quiet {
		view = orchestration.NullObserver{}
	}
	repl := cli.NewREPL(registry, a.newMachine(a.Logger, recorder, view), a.Menu)
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI opens the dashboard. Console logging would corrupt the alternate
// screen, so the machine logs nowhere while it is open.
func (a *Application) runTUI(ctx context.Context, recorder *metrics.Recorder) int {
	logger := logging.NewNopLogger()
	return tui.Run(ctx, tui.Config{
		Registry: a.newRegistry(beverage.NewLoggingSteps(logger)),
		Machine:  a.newMachine(logger, recorder),
		Orders:   a.Config.Orders,
		Version:  Version,
	})
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
