// Package pprof profiles the benchmarking tool's own Go runtime around each
// benchmarked invocation.
//
// Supported profiles are cpu, heap, allocs, goroutine, threadcreate, block
// and mutex. Each is written as <profile>.pprof to the scenario's output
// directory when the controller stops:
//
//	buildbench attach --pid 1234 --profile=pprof --pprof-profiles=cpu,heap
//
// This profiler contributes no JVM or Gradle arguments.
package pprof
