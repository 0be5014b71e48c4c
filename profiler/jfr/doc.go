// Package jfr attaches Java Flight Recorder to benchmarked Gradle builds.
//
// With a warm daemon (the tooling-api and cli invokers) the controller starts
// and stops a recording on the daemon process with jcmd. When every build
// runs in a fresh JVM (no-daemon, cold-daemon) the recording is configured
// through JVM arguments on instrumented builds instead. Recordings are
// written to <output>/<scenario>/<scenario>.jfr.
package jfr
