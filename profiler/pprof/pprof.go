package pprof

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"go.jacobcolvin.com/buildbench/profiler"
)

// ErrUnknownProfile indicates an unsupported profile name.
var ErrUnknownProfile = errors.New("unknown profile")

// Name is the registry name of this profiler.
const Name = "pprof"

const cpuProfile = "cpu"

// snapshotProfiles are written when the controller stops.
var snapshotProfiles = []string{"heap", "allocs", "goroutine", "threadcreate", "block", "mutex"}

// Flags holds CLI flag names for pprof configuration.
type Flags struct {
	Profiles             string
	MemProfileRate       string
	BlockProfileRate     string
	MutexProfileFraction string
}

// Options is the configuration object of the pprof profiler.
type Options struct {
	// Profiles lists the enabled profiles.
	Profiles             []string
	MemProfileRate       int
	BlockProfileRate     int
	MutexProfileFraction int
}

// DefaultOptions returns the options used when none were extracted.
func DefaultOptions() *Options {
	return &Options{
		Profiles:             []string{cpuProfile, "heap"},
		MemProfileRate:       524288,
		BlockProfileRate:     1,
		MutexProfileFraction: 1,
	}
}

// Enabled reports whether the named profile is enabled.
func (o *Options) Enabled(name string) bool {
	return slices.Contains(o.Profiles, name)
}

// Profiler captures Go runtime profiles.
//
// Create instances with [New].
type Profiler struct {
	profiler.Nop

	Flags Flags
}

// New creates a [Profiler] with default flag names.
func New() *Profiler {
	return &Profiler{
		Flags: Flags{
			Profiles:             "pprof-profiles",
			MemProfileRate:       "pprof-mem-profile-rate",
			BlockProfileRate:     "pprof-block-profile-rate",
			MutexProfileFraction: "pprof-mutex-profile-fraction",
		},
	}
}

func (p *Profiler) String() string {
	return Name
}

// RegisterFlags adds pprof flags to the given [*pflag.FlagSet].
func (p *Profiler) RegisterFlags(flags *pflag.FlagSet) {
	d := DefaultOptions()

	flags.StringSlice(p.Flags.Profiles, d.Profiles,
		fmt.Sprintf("runtime profiles to capture, any of: %s",
			strings.Join(append([]string{cpuProfile}, snapshotProfiles...), ", ")))
	flags.Int(p.Flags.MemProfileRate, d.MemProfileRate, "memory profile rate (bytes per sample)")
	flags.Int(p.Flags.BlockProfileRate, d.BlockProfileRate, "block profile rate (nanoseconds)")
	flags.Int(p.Flags.MutexProfileFraction, d.MutexProfileFraction, "mutex profile fraction (1/N sampling)")
}

// NewConfigObject reads [*Options] from flags registered with
// [Profiler.RegisterFlags].
func (p *Profiler) NewConfigObject(flags *pflag.FlagSet) (any, error) {
	var (
		opts Options
		err  error
	)

	opts.Profiles, err = flags.GetStringSlice(p.Flags.Profiles)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Flags.Profiles, err)
	}

	for _, name := range opts.Profiles {
		if name != cpuProfile && !slices.Contains(snapshotProfiles, name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
		}
	}

	opts.MemProfileRate, err = flags.GetInt(p.Flags.MemProfileRate)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Flags.MemProfileRate, err)
	}

	opts.BlockProfileRate, err = flags.GetInt(p.Flags.BlockProfileRate)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Flags.BlockProfileRate, err)
	}

	opts.MutexProfileFraction, err = flags.GetInt(p.Flags.MutexProfileFraction)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.Flags.MutexProfileFraction, err)
	}

	return &opts, nil
}

// NewController returns a [*Controller] writing to the scenario output
// directory. The pid is ignored: the profiled process is this one.
func (p *Profiler) NewController(_ string, settings profiler.ScenarioSettings) profiler.Controller {
	opts, ok := settings.Invocation.ProfilerOptions.(*Options)
	if !ok || opts == nil {
		opts = DefaultOptions()
	}

	return &Controller{
		Options: *opts,
		Dir:     settings.OutputDir(),
	}
}
