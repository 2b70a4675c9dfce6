package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/loopkata/internal/cli"
	"github.com/agbru/loopkata/internal/config"
	apperrors "github.com/agbru/loopkata/internal/errors"
	"github.com/agbru/loopkata/internal/fibonacci"
	"github.com/agbru/loopkata/internal/logging"
	"github.com/agbru/loopkata/internal/metrics"
	"github.com/agbru/loopkata/internal/summation"
)

const instrumentationName = "github.com/agbru/loopkata/internal/app"

// Application is one assembled program: its configuration plus the resolved
// algorithm and the ambient logger and metrics.
type Application struct {
	Config     config.AppConfig
	Summations *summation.Factory
	Fibonacci  *fibonacci.Factory
	Logger     logging.Logger
	Metrics    *metrics.Recorder

	summer     summation.Summer
	calculator fibonacci.Calculator
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSummationFactory sets the registry summation algorithms are resolved from.
func WithSummationFactory(f *summation.Factory) AppOption {
	return func(a *Application) { a.Summations = f }
}

// WithFibonacciFactory sets the registry Fibonacci algorithms are resolved from.
func WithFibonacciFactory(f *fibonacci.Factory) AppOption {
	return func(a *Application) { a.Fibonacci = f }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// New assembles the program described by cfg. The only failure is an
// algorithm name missing from the registry, reported as a ConfigError.
func New(cfg config.AppConfig, opts ...AppOption) (*Application, error) {
	app := &Application{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}
	if app.Summations == nil {
		app.Summations = summation.NewDefaultFactory()
	}
	if app.Fibonacci == nil {
		app.Fibonacci = fibonacci.NewDefaultFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}

	var err error
	switch cfg.Kind {
	case config.KindSum:
		app.summer, err = app.Summations.Get(cfg.Algo)
	case config.KindFibonacci:
		app.calculator, err = app.Fibonacci.Get(cfg.Algo)
	default:
		err = apperrors.NewConfigError("unknown program kind %d", cfg.Kind)
	}
	if err != nil {
		return nil, apperrors.WrapError(err, "assembling %s", cfg.Program)
	}
	return app, nil
}

// Run performs the computation and prints its single output line to out.
// It always returns ExitSuccess: a failed write is logged, matching a
// process that ignores the result of its final print.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	line := a.compute(ctx)
	if err := cli.DisplayLine(out, line); err != nil {
		a.Logger.Error("failed to display result", err, logging.String("program", a.Config.Program))
	}
	return apperrors.ExitSuccess
}

// compute runs the configured algorithm inside a span and returns the
// formatted output line.
func (a *Application) compute(ctx context.Context) string {
	_, span := otel.Tracer(instrumentationName).Start(ctx, a.Config.Program+".compute",
		trace.WithAttributes(
			attribute.String("loopkata.program", a.Config.Program),
			attribute.String("loopkata.algorithm", a.Config.Algo),
		))
	defer span.End()

	if a.Config.Kind == config.KindFibonacci {
		n := a.Config.N
		value := a.calculator.Calculate(n)
		span.SetAttributes(attribute.Int64("loopkata.n", int64(n)))

		a.Metrics.ObserveRun(a.Config.Program, float64(value))
		a.Logger.Debug("fibonacci computed",
			logging.String("algorithm", a.calculator.Name()),
			logging.Uint64("n", n),
			logging.Uint64("value", value))
		return cli.FormatFibonacci(n, value)
	}

	res := a.summer.Sum(a.Config.Values)
	span.SetAttributes(
		attribute.Int("loopkata.input_len", len(a.Config.Values)),
		attribute.Int("loopkata.steps", res.Steps))

	a.Metrics.ObserveRun(a.Config.Program, float64(res.Value))
	a.Metrics.AddLoopSteps(a.Config.Algo, res.Steps)
	a.Logger.Debug("sum computed",
		logging.String("algorithm", a.summer.Name()),
		logging.Int("value", res.Value),
		logging.Int("steps", res.Steps))
	return cli.FormatSum(res.Value)
}

// Execute assembles and runs the program described by cfg, writing its output
// to stdout and diagnostics to stderr. It returns the process exit code.
func Execute(ctx context.Context, cfg config.AppConfig, stdout, stderr io.Writer) int {
	logger := logging.NewLevelLogger(stderr, cfg.Program, cfg.LogLevel)
	application, err := New(cfg, WithLogger(logger))
	if err != nil {
		logger.Error("invalid program configuration", err)
		return apperrors.ExitCodeFor(err)
	}
	return application.Run(ctx, stdout)
}
