// Package heapdump captures JVM heap dumps of benchmarked builds.
//
// Dumps can be taken when the build runs out of memory ("oom") and at the end
// of every instrumented build ("build-end"). They are written to the
// scenario's output directory.
package heapdump

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/buildbench/profiler"
)

// Name is the registry name of this profiler.
const Name = "heap-dump"

// BuildEndProperty is the system property that asks the build to dump its
// heap when it finishes.
const BuildEndProperty = "org.gradle.profiler.heapdump"

// When names a point at which a heap dump is taken.
type When string

const (
	// OnOutOfMemory dumps when the JVM runs out of memory.
	OnOutOfMemory When = "oom"
	// AtBuildEnd dumps when an instrumented build finishes.
	AtBuildEnd When = "build-end"
)

// ErrUnknownWhen indicates an unrecognized --heap-dump-when value.
var ErrUnknownWhen = errors.New("unknown heap dump trigger")

var allWhens = []string{string(OnOutOfMemory), string(AtBuildEnd)}

// Options is the configuration object of the heap dump profiler.
type Options struct {
	When []When
}

func (o *Options) has(w When) bool {
	return o != nil && slices.Contains(o.When, w)
}

// Profiler adds heap dump arguments to builds.
type Profiler struct {
	profiler.Nop

	// WhenFlag is the name of the trigger flag.
	WhenFlag string
}

// New creates a [Profiler] with default flag names.
func New() *Profiler {
	return &Profiler{WhenFlag: "heap-dump-when"}
}

func (p *Profiler) String() string {
	return "heap dump"
}

// RegisterFlags adds the trigger flag to the given [*pflag.FlagSet].
func (p *Profiler) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringSlice(p.WhenFlag, []string{string(OnOutOfMemory)},
		fmt.Sprintf("when to dump the heap, any of: %s", strings.Join(allWhens, ", ")))
}

// RegisterCompletions registers shell completions for the trigger flag.
func (p *Profiler) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(p.WhenFlag,
		cobra.FixedCompletions(allWhens, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", p.WhenFlag, err)
	}

	return nil
}

// NewConfigObject reads [*Options] from flags.
func (p *Profiler) NewConfigObject(flags *pflag.FlagSet) (any, error) {
	values, err := flags.GetStringSlice(p.WhenFlag)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.WhenFlag, err)
	}

	opts := &Options{}

	for _, v := range values {
		if !slices.Contains(allWhens, v) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWhen, v)
		}

		opts.When = append(opts.When, When(v))
	}

	return opts, nil
}

// NewJVMArgsCalculator enables out-of-memory dumps on every build.
func (p *Profiler) NewJVMArgsCalculator(settings profiler.ScenarioSettings) profiler.JVMArgsCalculator {
	if !options(settings).has(OnOutOfMemory) {
		return p.Nop.NewJVMArgsCalculator(settings)
	}

	return profiler.JVMArgsFunc(profiler.AppendArgs(
		"-XX:+HeapDumpOnOutOfMemoryError",
		"-XX:HeapDumpPath="+settings.OutputDir(),
	))
}

// NewInstrumentedBuildsGradleArgsCalculator asks instrumented builds to dump
// their heap when they finish.
func (p *Profiler) NewInstrumentedBuildsGradleArgsCalculator(settings profiler.ScenarioSettings) profiler.GradleArgsCalculator {
	if !options(settings).has(AtBuildEnd) {
		return p.Nop.NewInstrumentedBuildsGradleArgsCalculator(settings)
	}

	return profiler.GradleArgsFunc(profiler.AppendArgs(
		fmt.Sprintf("-D%s=%s", BuildEndProperty, settings.OutputDir()),
	))
}

func options(settings profiler.ScenarioSettings) *Options {
	opts, ok := settings.Invocation.ProfilerOptions.(*Options)
	if !ok || opts == nil {
		return &Options{When: []When{OnOutOfMemory}}
	}

	return opts
}
