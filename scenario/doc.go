// Package scenario loads benchmark scenario definitions.
//
// A scenario file is a YAML mapping from scenario name to definition:
//
//	assemble:
//	  title: Assemble all
//	  tasks: [assemble]
//	  gradle-args: [--parallel]
//	  jvm-args: [-Xmx2g]
//	  system-properties:
//	    org.gradle.caching: "true"
//	  warm-ups: 6
//	  iterations: 10
//
// Use [Load] or [Parse] to read a file, and [Schema] to obtain a JSON Schema
// describing the format for editor integration.
package scenario
