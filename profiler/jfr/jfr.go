package jfr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"go.jacobcolvin.com/buildbench/profiler"
)

// Name is the registry name of this profiler.
const Name = "jfr"

const recordingName = "buildbench"

// ErrCommand indicates an external command failed.
var ErrCommand = errors.New("command failed")

// Runner runs external commands.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with [os/exec].
type ExecRunner struct{}

// Run runs name with args, including combined output in the error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w: %s", ErrCommand, name, strings.Join(args, " "), err,
			bytes.TrimSpace(out))
	}

	return nil
}

// Flags holds CLI flag names for JFR configuration.
type Flags struct {
	Settings string
}

// Options is the configuration object of the JFR profiler.
type Options struct {
	// Settings is a JFR settings name ("default", "profile") or the path of
	// a .jfc file.
	Settings string
}

// Profiler records builds with Java Flight Recorder.
//
// Create instances with [New].
type Profiler struct {
	Runner Runner
	Flags  Flags

	profiler.Nop
}

// New creates a [Profiler] that runs jcmd with [ExecRunner].
func New() *Profiler {
	return &Profiler{
		Runner: ExecRunner{},
		Flags:  Flags{Settings: "jfr-settings"},
	}
}

func (p *Profiler) String() string {
	return "JFR"
}

// RegisterFlags adds JFR flags to the given [*pflag.FlagSet].
func (p *Profiler) RegisterFlags(flags *pflag.FlagSet) {
	flags.String(p.Flags.Settings, "profile", "JFR settings name or .jfc file")
}

// NewConfigObject reads [*Options] from flags.
func (p *Profiler) NewConfigObject(flags *pflag.FlagSet) (any, error) {
	s, err := flags.GetString(p.Flags.Settings)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Flags.Settings, err)
	}

	return &Options{Settings: s}, nil
}

// NewJVMArgsCalculator enables the diagnostics JFR needs for accurate stack
// traces, on every build.
func (p *Profiler) NewJVMArgsCalculator(profiler.ScenarioSettings) profiler.JVMArgsCalculator {
	return profiler.JVMArgsFunc(profiler.AppendArgs(
		"-XX:+UnlockDiagnosticVMOptions",
		"-XX:+DebugNonSafepoints",
	))
}

// NewInstrumentedBuildsJVMArgsCalculator starts a recording at JVM startup
// when every build runs in its own JVM.
func (p *Profiler) NewInstrumentedBuildsJVMArgsCalculator(settings profiler.ScenarioSettings) profiler.JVMArgsCalculator {
	if usesWarmDaemon(settings) {
		return p.Nop.NewInstrumentedBuildsJVMArgsCalculator(settings)
	}

	opts := options(settings)

	return profiler.JVMArgsFunc(profiler.AppendArgs(fmt.Sprintf(
		"-XX:StartFlightRecording=name=%s,settings=%s,dumponexit=true,filename=%s",
		recordingName, opts.Settings, recordingFile(settings))))
}

// NewController returns a controller driving a recording on pid with jcmd.
// Without a warm daemon or a pid there is nothing to attach to and the
// controller does nothing.
func (p *Profiler) NewController(pid string, settings profiler.ScenarioSettings) profiler.Controller {
	if pid == "" || !usesWarmDaemon(settings) {
		return p.Nop.NewController(pid, settings)
	}

	return &Controller{
		runner:   p.Runner,
		pid:      pid,
		settings: options(settings).Settings,
		filename: recordingFile(settings),
	}
}

// Controller starts and stops a JFR recording on a running JVM.
type Controller struct {
	runner   Runner
	pid      string
	settings string
	filename string
}

// Start begins the recording.
func (c *Controller) Start(ctx context.Context) error {
	return c.runner.Run(ctx, "jcmd", c.pid, "JFR.start",
		"name="+recordingName, "settings="+c.settings)
}

// Stop ends the recording and writes it to disk.
func (c *Controller) Stop(ctx context.Context) error {
	return c.runner.Run(ctx, "jcmd", c.pid, "JFR.stop",
		"name="+recordingName, "filename="+c.filename)
}

func options(settings profiler.ScenarioSettings) *Options {
	opts, ok := settings.Invocation.ProfilerOptions.(*Options)
	if !ok || opts == nil {
		return &Options{Settings: "profile"}
	}

	return opts
}

func usesWarmDaemon(settings profiler.ScenarioSettings) bool {
	switch settings.Invocation.Invoker {
	case profiler.InvokerNoDaemon, profiler.InvokerColdDaemon:
		return false
	case profiler.InvokerToolingAPI, profiler.InvokerCLI:
	}

	return true
}

func recordingFile(settings profiler.ScenarioSettings) string {
	name := settings.Scenario.Name
	if name == "" {
		name = recordingName
	}

	return filepath.Join(settings.OutputDir(), name+".jfr")
}
