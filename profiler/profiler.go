package profiler

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

//go:generate mockgen -source profiler.go -destination profiler_mock.go -package profiler

// Profiler is a pluggable performance-instrumentation tool.
//
// The String method returns the label used for logging and reporting.
type Profiler interface {
	fmt.Stringer

	// NewConfigObject extracts this profiler's configuration from parsed
	// command-line flags. The returned value is handed back to the profiler
	// as [InvocationSettings.ProfilerOptions]. It may be nil.
	NewConfigObject(flags *pflag.FlagSet) (any, error)

	// NewController returns the lifecycle handle for one benchmarked
	// invocation of the process identified by pid.
	NewController(pid string, settings ScenarioSettings) Controller

	// NewJVMArgsCalculator returns JVM arguments for every build.
	NewJVMArgsCalculator(settings ScenarioSettings) JVMArgsCalculator

	// NewInstrumentedBuildsJVMArgsCalculator returns JVM arguments for
	// measured builds only.
	NewInstrumentedBuildsJVMArgsCalculator(settings ScenarioSettings) JVMArgsCalculator

	// NewGradleArgsCalculator returns Gradle arguments for every build.
	NewGradleArgsCalculator(settings ScenarioSettings) GradleArgsCalculator

	// NewInstrumentedBuildsGradleArgsCalculator returns Gradle arguments for
	// measured builds only.
	NewInstrumentedBuildsGradleArgsCalculator(settings ScenarioSettings) GradleArgsCalculator
}

// FlagRegisterer is implemented by profilers that read their own flags in
// [Profiler.NewConfigObject].
type FlagRegisterer interface {
	RegisterFlags(flags *pflag.FlagSet)
}

// Controller starts and stops profiling around one benchmarked invocation.
// Both methods may fail with an I/O error or with the context's error when
// interrupted.
type Controller interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// JVMArgsCalculator appends JVM arguments to args and returns the result.
type JVMArgsCalculator interface {
	CalculateJVMArgs(args []string) []string
}

// GradleArgsCalculator appends Gradle arguments to args and returns the
// result.
type GradleArgsCalculator interface {
	CalculateGradleArgs(args []string) []string
}

// ControllerFuncs adapts a pair of functions to a [Controller]. Nil functions
// are no-ops.
type ControllerFuncs struct {
	StartFunc func(ctx context.Context) error
	StopFunc  func(ctx context.Context) error
}

// Start calls c.StartFunc.
func (c ControllerFuncs) Start(ctx context.Context) error {
	if c.StartFunc == nil {
		return nil
	}

	return c.StartFunc(ctx)
}

// Stop calls c.StopFunc.
func (c ControllerFuncs) Stop(ctx context.Context) error {
	if c.StopFunc == nil {
		return nil
	}

	return c.StopFunc(ctx)
}

// JVMArgsFunc adapts a function to a [JVMArgsCalculator].
type JVMArgsFunc func(args []string) []string

// CalculateJVMArgs calls f(args).
func (f JVMArgsFunc) CalculateJVMArgs(args []string) []string {
	return f(args)
}

// GradleArgsFunc adapts a function to a [GradleArgsCalculator].
type GradleArgsFunc func(args []string) []string

// CalculateGradleArgs calls f(args).
func (f GradleArgsFunc) CalculateGradleArgs(args []string) []string {
	return f(args)
}

// AppendArgs returns a calculator function that appends extra.
func AppendArgs(extra ...string) func([]string) []string {
	return func(args []string) []string {
		return append(args, extra...)
	}
}

// Nop implements every [Profiler] factory as a no-op. Embed it in concrete
// profilers so they only override what they contribute.
type Nop struct{}

// NewConfigObject returns nil.
func (Nop) NewConfigObject(*pflag.FlagSet) (any, error) {
	return nil, nil //nolint:nilnil // No configuration is a valid result.
}

// NewController returns a controller whose Start and Stop do nothing.
func (Nop) NewController(string, ScenarioSettings) Controller {
	return ControllerFuncs{}
}

// NewJVMArgsCalculator returns a calculator that adds nothing.
func (Nop) NewJVMArgsCalculator(ScenarioSettings) JVMArgsCalculator {
	return JVMArgsFunc(AppendArgs())
}

// NewInstrumentedBuildsJVMArgsCalculator returns a calculator that adds
// nothing.
func (Nop) NewInstrumentedBuildsJVMArgsCalculator(ScenarioSettings) JVMArgsCalculator {
	return JVMArgsFunc(AppendArgs())
}

// NewGradleArgsCalculator returns a calculator that adds nothing.
func (Nop) NewGradleArgsCalculator(ScenarioSettings) GradleArgsCalculator {
	return GradleArgsFunc(AppendArgs())
}

// NewInstrumentedBuildsGradleArgsCalculator returns a calculator that adds
// nothing.
func (Nop) NewInstrumentedBuildsGradleArgsCalculator(ScenarioSettings) GradleArgsCalculator {
	return GradleArgsFunc(AppendArgs())
}

type none struct {
	Nop
}

func (none) String() string {
	return "none"
}

// None is the profiler used when no profiler is selected.
var None Profiler = none{}
