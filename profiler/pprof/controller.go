package pprof

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
)

// Controller controls one runtime profiling session.
//
// Call [Controller.Start] to begin profiling and [Controller.Stop] to write
// all enabled profiles.
type Controller struct {
	cpuFile *os.File

	// Rates in effect before Start, put back by Stop.
	prevMemProfileRate       int
	prevMutexProfileFraction int
	started                  bool

	// Dir receives <profile>.pprof files.
	Dir string

	Options
}

// Start configures the process-wide runtime profiling rates and starts CPU
// profiling if enabled. [Controller.Stop] restores the memory and mutex rates
// and sets the block profile rate to 0.
func (c *Controller) Start(context.Context) error {
	c.prevMemProfileRate = runtime.MemProfileRate
	c.prevMutexProfileFraction = runtime.SetMutexProfileFraction(c.MutexProfileFraction)
	c.started = true

	runtime.MemProfileRate = c.MemProfileRate
	runtime.SetBlockProfileRate(c.BlockProfileRate)

	err := os.MkdirAll(c.Dir, 0o750)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if !c.Enabled(cpuProfile) {
		return nil
	}

	f, err := os.Create(c.path(cpuProfile))
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		must(f.Close())

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	c.cpuFile = f

	return nil
}

// Stop stops CPU profiling, writes all enabled snapshot profiles and
// restores the rates changed by [Controller.Start].
func (c *Controller) Stop(context.Context) error {
	defer c.restoreRates()

	if c.cpuFile != nil {
		pprof.StopCPUProfile()

		err := c.cpuFile.Close()
		c.cpuFile = nil

		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}
	}

	for _, name := range snapshotProfiles {
		if !c.Enabled(name) {
			continue
		}

		err := c.writeProfile(name)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Controller) restoreRates() {
	if !c.started {
		return
	}

	runtime.MemProfileRate = c.prevMemProfileRate
	runtime.SetMutexProfileFraction(c.prevMutexProfileFraction)
	runtime.SetBlockProfileRate(0)

	c.started = false
}

func (c *Controller) path(name string) string {
	return filepath.Join(c.Dir, name+".pprof")
}

// writeProfile writes a named pprof profile into the output directory.
func (c *Controller) writeProfile(name string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}

	f, err := os.Create(c.path(name))
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		must(f.Close())

		return fmt.Errorf("write %s profile: %w", name, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("write %s profile: %w", name, err)
	}

	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
