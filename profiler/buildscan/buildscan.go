// Package buildscan publishes a Gradle build scan for instrumented builds.
package buildscan

import (
	"fmt"

	"github.com/spf13/pflag"

	"go.jacobcolvin.com/buildbench/profiler"
)

// Name is the registry name of this profiler.
const Name = "buildscan"

// VersionProperty is the system property carrying the requested build scan
// plugin version.
const VersionProperty = "org.gradle.profiler.buildscan.version"

// Options is the configuration object of the build scan profiler.
type Options struct {
	// Version pins the build scan plugin version. Empty uses the build's own.
	Version string
}

// Profiler adds --scan to instrumented builds.
type Profiler struct {
	profiler.Nop

	// VersionFlag is the name of the plugin version flag.
	VersionFlag string
}

// New creates a [Profiler] with default flag names.
func New() *Profiler {
	return &Profiler{VersionFlag: "buildscan-version"}
}

func (p *Profiler) String() string {
	return "build scan"
}

// RegisterFlags adds the plugin version flag to the given [*pflag.FlagSet].
func (p *Profiler) RegisterFlags(flags *pflag.FlagSet) {
	flags.String(p.VersionFlag, "", "build scan plugin version (default: the build's own)")
}

// NewConfigObject reads [*Options] from flags.
func (p *Profiler) NewConfigObject(flags *pflag.FlagSet) (any, error) {
	v, err := flags.GetString(p.VersionFlag)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.VersionFlag, err)
	}

	return &Options{Version: v}, nil
}

// NewInstrumentedBuildsGradleArgsCalculator requests a build scan.
func (p *Profiler) NewInstrumentedBuildsGradleArgsCalculator(settings profiler.ScenarioSettings) profiler.GradleArgsCalculator {
	args := []string{"--scan"}

	opts, ok := settings.Invocation.ProfilerOptions.(*Options)
	if ok && opts != nil && opts.Version != "" {
		args = append(args, fmt.Sprintf("-D%s=%s", VersionProperty, opts.Version))
	}

	return profiler.GradleArgsFunc(profiler.AppendArgs(args...))
}
