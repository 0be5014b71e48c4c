// Package profiler defines the contract between a build-benchmarking tool and
// the profilers it can attach to a benchmarked process, and composes any
// number of profilers into one.
//
// A [Profiler] produces a [Controller] that brackets one benchmarked
// invocation, plus [JVMArgsCalculator] and [GradleArgsCalculator] values that
// contribute command-line arguments. Each profiler owns its configuration
// object, extracted from parsed flags with [Profiler.NewConfigObject].
//
// A [Composite] treats an ordered list of profilers as one:
//
//	p := profiler.NewComposite([]profiler.Profiler{jfr.New(), buildscan.New()})
//
//	_, err := p.NewConfigObject(flags)
//	if err != nil {
//	    return err
//	}
//
//	args := p.NewJVMArgsCalculator(settings).CalculateJVMArgs(nil)
//
//	ctrl := p.NewController(pid, settings)
//	err = ctrl.Start(ctx)
//	// Run the build.
//	err = ctrl.Stop(ctx)
//
// Most callers select profilers by name through a [Config] backed by a
// [Registry], which returns [None], a single profiler, or a [Composite]
// depending on how many names were given.
package profiler
