// Package builtin registers the profilers shipped with buildbench.
package builtin

import (
	"go.jacobcolvin.com/buildbench/profiler"
	"go.jacobcolvin.com/buildbench/profiler/buildscan"
	"go.jacobcolvin.com/buildbench/profiler/heapdump"
	"go.jacobcolvin.com/buildbench/profiler/jfr"
	"go.jacobcolvin.com/buildbench/profiler/pprof"
)

// Registry returns a [profiler.Registry] populated with the built-in
// profilers: buildscan, heap-dump, jfr and pprof.
func Registry() profiler.Registry {
	r := make(profiler.Registry)
	r.Add(buildscan.Name, func() profiler.Profiler { return buildscan.New() })
	r.Add(heapdump.Name, func() profiler.Profiler { return heapdump.New() })
	r.Add(jfr.Name, func() profiler.Profiler { return jfr.New() })
	r.Add(pprof.Name, func() profiler.Profiler { return pprof.New() })

	return r
}
