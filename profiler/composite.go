package profiler

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Composite fans every [Profiler] operation out to an ordered list of
// delegates, so that profiling with N profilers looks like profiling with one.
//
// Delegate order is fixed at construction and used for everything: config
// extraction, controller start, controller stop, argument contribution and
// the display label.
//
// Each delegate sees settings narrowed to itself: the active profiler is the
// delegate and the profiler options are the delegate's own configuration
// object. Call [Composite.NewConfigObject] before any factory method, since
// delegates whose configuration has not been extracted are given nil options.
//
// A Composite is not safe for concurrent use while [Composite.NewConfigObject]
// runs. Afterwards, factory methods may be called from any goroutine.
//
// Create instances with [NewComposite].
type Composite struct {
	log       *slog.Logger
	delegates []Profiler
	// options[i] is the configuration object of delegates[i].
	options []any
}

// CompositeOption configures a [Composite].
type CompositeOption func(*Composite)

// WithLogger sets the logger used to report delegate start and stop.
func WithLogger(l *slog.Logger) CompositeOption {
	return func(c *Composite) {
		if l != nil {
			c.log = l
		}
	}
}

// NewComposite creates a [Composite] over delegates. An empty list is valid
// and produces a composite whose operations do nothing.
func NewComposite(delegates []Profiler, opts ...CompositeOption) *Composite {
	c := &Composite{
		log:       slog.New(slog.DiscardHandler),
		delegates: slices.Clone(delegates),
		options:   make([]any, len(delegates)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// String returns the delegate labels joined with ", ".
func (c *Composite) String() string {
	labels := make([]string, len(c.delegates))
	for i, d := range c.delegates {
		labels[i] = d.String()
	}

	return strings.Join(labels, ", ")
}

// Delegates returns a copy of the delegate list.
func (c *Composite) Delegates() []Profiler {
	return slices.Clone(c.delegates)
}

// RegisterFlags registers the flags of every delegate implementing
// [FlagRegisterer].
func (c *Composite) RegisterFlags(flags *pflag.FlagSet) {
	for _, d := range c.delegates {
		if r, ok := d.(FlagRegisterer); ok {
			r.RegisterFlags(flags)
		}
	}
}

// NewConfigObject extracts every delegate's configuration from flags, in
// delegate order, replacing any previously extracted value. The returned
// value is a [ConfigObjects] view of the result.
//
// If a delegate fails, its error is returned and later delegates are not
// consulted. Values extracted before the failure are kept.
func (c *Composite) NewConfigObject(flags *pflag.FlagSet) (any, error) {
	for i, d := range c.delegates {
		opts, err := d.NewConfigObject(flags)
		if err != nil {
			return nil, fmt.Errorf("configure %s: %w", d, err)
		}

		c.options[i] = opts
	}

	return c.ConfigObjects(), nil
}

// ConfigObjects returns a read-only view of the delegates' configuration
// objects.
func (c *Composite) ConfigObjects() ConfigObjects {
	return ConfigObjects{delegates: c.delegates, options: c.options}
}

// settingsFor narrows settings to the delegate at index i.
func (c *Composite) settingsFor(i int, settings ScenarioSettings) ScenarioSettings {
	return ScenarioSettings{
		Invocation: settings.Invocation.WithProfiler(c.delegates[i], c.options[i]),
		Scenario:   settings.Scenario,
	}
}

// NewController returns [Controllers] holding one controller per delegate, in
// delegate order. Errors from a delegate controller are annotated with the
// delegate's label.
func (c *Composite) NewController(pid string, settings ScenarioSettings) Controller {
	ctrls := make(Controllers, len(c.delegates))
	for i, d := range c.delegates {
		ctrls[i] = delegateController{
			Controller: d.NewController(pid, c.settingsFor(i, settings)),
			log:        c.log,
			name:       d.String(),
		}
	}

	return ctrls
}

// NewJVMArgsCalculator returns the delegates' JVM argument calculators as
// [JVMArgsCalculators].
func (c *Composite) NewJVMArgsCalculator(settings ScenarioSettings) JVMArgsCalculator {
	calcs := make(JVMArgsCalculators, len(c.delegates))
	for i, d := range c.delegates {
		calcs[i] = d.NewJVMArgsCalculator(c.settingsFor(i, settings))
	}

	return calcs
}

// NewInstrumentedBuildsJVMArgsCalculator returns the delegates' instrumented
// build JVM argument calculators as [JVMArgsCalculators].
func (c *Composite) NewInstrumentedBuildsJVMArgsCalculator(settings ScenarioSettings) JVMArgsCalculator {
	calcs := make(JVMArgsCalculators, len(c.delegates))
	for i, d := range c.delegates {
		calcs[i] = d.NewInstrumentedBuildsJVMArgsCalculator(c.settingsFor(i, settings))
	}

	return calcs
}

// NewGradleArgsCalculator returns the delegates' Gradle argument calculators
// as [GradleArgsCalculators].
func (c *Composite) NewGradleArgsCalculator(settings ScenarioSettings) GradleArgsCalculator {
	calcs := make(GradleArgsCalculators, len(c.delegates))
	for i, d := range c.delegates {
		calcs[i] = d.NewGradleArgsCalculator(c.settingsFor(i, settings))
	}

	return calcs
}

// NewInstrumentedBuildsGradleArgsCalculator returns the delegates'
// instrumented build Gradle argument calculators as [GradleArgsCalculators].
func (c *Composite) NewInstrumentedBuildsGradleArgsCalculator(settings ScenarioSettings) GradleArgsCalculator {
	calcs := make(GradleArgsCalculators, len(c.delegates))
	for i, d := range c.delegates {
		calcs[i] = d.NewInstrumentedBuildsGradleArgsCalculator(c.settingsFor(i, settings))
	}

	return calcs
}

// ConfigObjects is a read-only, ordered view pairing each delegate of a
// [Composite] with its configuration object.
type ConfigObjects struct {
	delegates []Profiler
	options   []any
}

// Len returns the number of delegates.
func (o ConfigObjects) Len() int {
	return len(o.delegates)
}

// At returns the delegate at index i and its configuration object.
func (o ConfigObjects) At(i int) (Profiler, any) {
	return o.delegates[i], o.options[i]
}

// Lookup returns the configuration object of the first delegate whose
// display label (its String value, such as "JFR") equals label, and whether
// such a delegate exists. Registry names such as "jfr" are not labels.
func (o ConfigObjects) Lookup(label string) (any, bool) {
	for i, d := range o.delegates {
		if d.String() == label {
			return o.options[i], true
		}
	}

	return nil, false
}

// All iterates over delegates and their configuration objects in delegate
// order.
func (o ConfigObjects) All() iter.Seq2[Profiler, any] {
	return func(yield func(Profiler, any) bool) {
		for i, d := range o.delegates {
			if !yield(d, o.options[i]) {
				return
			}
		}
	}
}

// Controllers starts and stops a sequence of controllers one at a time, in
// order.
//
// The first error aborts the sequence. Controllers that were already started
// are not stopped; callers that need cleanup must call [Controllers.Stop]
// themselves.
type Controllers []Controller

// Start starts each controller in order.
func (cs Controllers) Start(ctx context.Context) error {
	for _, c := range cs {
		err := c.Start(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

// Stop stops each controller in the same order as [Controllers.Start].
func (cs Controllers) Stop(ctx context.Context) error {
	for _, c := range cs {
		err := c.Stop(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

// delegateController annotates a delegate's controller with its label.
type delegateController struct {
	Controller

	log  *slog.Logger
	name string
}

func (d delegateController) Start(ctx context.Context) error {
	d.log.DebugContext(ctx, "starting profiler", slog.String("profiler", d.name))

	err := d.Controller.Start(ctx)
	if err != nil {
		return fmt.Errorf("start %s: %w", d.name, err)
	}

	return nil
}

func (d delegateController) Stop(ctx context.Context) error {
	d.log.DebugContext(ctx, "stopping profiler", slog.String("profiler", d.name))

	err := d.Controller.Stop(ctx)
	if err != nil {
		return fmt.Errorf("stop %s: %w", d.name, err)
	}

	return nil
}

// JVMArgsCalculators applies a sequence of calculators, in order, to one
// argument list.
type JVMArgsCalculators []JVMArgsCalculator

// CalculateJVMArgs appends every calculator's arguments to args.
func (cs JVMArgsCalculators) CalculateJVMArgs(args []string) []string {
	for _, c := range cs {
		args = c.CalculateJVMArgs(args)
	}

	return args
}

// GradleArgsCalculators applies a sequence of calculators, in order, to one
// argument list.
type GradleArgsCalculators []GradleArgsCalculator

// CalculateGradleArgs appends every calculator's arguments to args.
func (cs GradleArgsCalculators) CalculateGradleArgs(args []string) []string {
	for _, c := range cs {
		args = c.CalculateGradleArgs(args)
	}

	return args
}
