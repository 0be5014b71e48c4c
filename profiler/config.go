package profiler

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// ErrUnknownProfiler indicates a profiler name missing from the registry.
	ErrUnknownProfiler = errors.New("unknown profiler")
	// ErrDuplicateProfiler indicates a profiler name was selected twice.
	ErrDuplicateProfiler = errors.New("duplicate profiler")
)

// Registry maps profiler names to constructors.
type Registry map[string]func() Profiler

// Add registers constructor under name, replacing any previous entry.
func (r Registry) Add(name string, constructor func() Profiler) {
	r[name] = constructor
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// CompletionRegisterer is implemented by profilers that provide shell
// completions for their own flags.
type CompletionRegisterer interface {
	RegisterCompletions(cmd *cobra.Command) error
}

// Flags holds CLI flag names for profiler selection, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Profilers string
}

// Config holds the profiler selection made on the command line.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to build the selected
// [Profiler].
type Config struct {
	Flags     Flags
	Registry  Registry
	Profilers []string
}

// NewConfig returns a new [Config] selecting from reg.
func NewConfig(reg Registry) *Config {
	f := Flags{
		Profilers: "profile",
	}

	return &Config{Flags: f, Registry: reg}
}

// RegisterFlags adds the profiler selection flag, plus the flags of every
// registered profiler, to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&c.Profilers, c.Flags.Profilers, nil,
		fmt.Sprintf("profilers to attach (repeatable or comma-separated), any of: %s",
			strings.Join(c.Registry.Names(), ", ")))

	for _, name := range c.Registry.Names() {
		if r, ok := c.Registry[name]().(FlagRegisterer); ok {
			r.RegisterFlags(flags)
		}
	}
}

// RegisterCompletions registers shell completions for the profiler selection
// flag, and for profilers implementing [CompletionRegisterer], on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Profilers,
		cobra.FixedCompletions(c.Registry.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Profilers, err)
	}

	for _, name := range c.Registry.Names() {
		r, ok := c.Registry[name]().(CompletionRegisterer)
		if !ok {
			continue
		}

		err := r.RegisterCompletions(cmd)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// NewProfiler builds the selected profiler: [None] when nothing is selected,
// the profiler itself when one is selected, and a [Composite] in selection
// order otherwise. opts apply to the [Composite].
func (c *Config) NewProfiler(opts ...CompositeOption) (Profiler, error) {
	profilers, err := c.parseProfilerNames(c.Profilers)
	if err != nil {
		return nil, err
	}

	switch len(profilers) {
	case 0:
		return None, nil
	case 1:
		return profilers[0], nil
	}

	return NewComposite(profilers, opts...), nil
}

// parseProfilerNames resolves names against the registry, preserving order.
func (c *Config) parseProfilerNames(names []string) ([]Profiler, error) {
	profilers := make([]Profiler, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		constructor, ok := c.Registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProfiler, name)
		}

		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProfiler, name)
		}

		seen[name] = true

		profilers = append(profilers, constructor())
	}

	return profilers, nil
}
