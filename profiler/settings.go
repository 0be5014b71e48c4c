package profiler

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.jacobcolvin.com/buildbench/scenario"
)

// Invoker names the mechanism used to run the benchmarked build.
type Invoker string

const (
	// InvokerToolingAPI runs builds through the Gradle Tooling API with a
	// warm daemon.
	InvokerToolingAPI Invoker = "tooling-api"
	// InvokerCLI runs builds through the command line with a warm daemon.
	InvokerCLI Invoker = "cli"
	// InvokerNoDaemon runs builds through the command line without a daemon.
	InvokerNoDaemon Invoker = "no-daemon"
	// InvokerColdDaemon starts a fresh daemon for every build.
	InvokerColdDaemon Invoker = "cold-daemon"
)

// ErrUnknownInvoker indicates an unrecognized invoker string.
var ErrUnknownInvoker = errors.New("unknown invoker")

var allInvokers = []Invoker{InvokerToolingAPI, InvokerCLI, InvokerNoDaemon, InvokerColdDaemon}

// ParseInvoker parses an invoker name.
func ParseInvoker(s string) (Invoker, error) {
	inv := Invoker(strings.ToLower(s))
	if slices.Contains(allInvokers, inv) {
		return inv, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownInvoker, s)
}

// GetAllInvokerStrings returns every known invoker name.
func GetAllInvokerStrings() []string {
	out := make([]string, len(allInvokers))
	for i, inv := range allInvokers {
		out[i] = string(inv)
	}

	return out
}

// InvocationSettings describes one run of the benchmarking tool.
//
// Treat values as immutable: derive modified copies with
// [InvocationSettings.WithProfiler]. Slices and maps are shared between
// copies and must not be mutated.
type InvocationSettings struct {
	// Profiler is the active profiler.
	Profiler Profiler
	// ProfilerOptions is the configuration object produced by Profiler's
	// [Profiler.NewConfigObject]. Nil when none was produced.
	ProfilerOptions  any
	SystemProperties map[string]string
	ProjectDir       string
	OutputDir        string
	Invoker          Invoker
	ScenarioFile     string
	GradleUserHome   string
	Versions         []string
	Targets          []string
	WarmUpCount      int
	BuildCount       int
	Benchmark        bool
	DryRun           bool
}

// WithProfiler returns a copy of s with the active profiler and its options
// replaced. Every other field is carried over unchanged.
func (s InvocationSettings) WithProfiler(p Profiler, options any) InvocationSettings {
	s.Profiler = p
	s.ProfilerOptions = options

	return s
}

// ScenarioSettings pairs invocation-wide settings with the scenario being
// benchmarked.
type ScenarioSettings struct {
	Invocation InvocationSettings
	Scenario   scenario.Scenario
}

// OutputDir returns the directory where profilers write output for the
// scenario.
func (s ScenarioSettings) OutputDir() string {
	if s.Scenario.Name == "" {
		return s.Invocation.OutputDir
	}

	return filepath.Join(s.Invocation.OutputDir, s.Scenario.Name)
}
