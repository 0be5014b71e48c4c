package jfr_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/buildbench/profiler"
	"go.jacobcolvin.com/buildbench/profiler/jfr"
	"go.jacobcolvin.com/buildbench/scenario"
)

type fakeRunner struct {
	err   error
	calls []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))

	return r.err
}

func settings(invoker profiler.Invoker) profiler.ScenarioSettings {
	return profiler.ScenarioSettings{
		Invocation: profiler.InvocationSettings{
			OutputDir:       "out",
			Invoker:         invoker,
			ProfilerOptions: &jfr.Options{Settings: "default"},
		},
		Scenario: scenario.Scenario{Name: "assemble"},
	}
}

func TestProfiler_NewConfigObject(t *testing.T) {
	t.Parallel()

	p := jfr.New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p.RegisterFlags(flags)

	got, err := p.NewConfigObject(flags)
	require.NoError(t, err)
	assert.Equal(t, &jfr.Options{Settings: "profile"}, got)

	require.NoError(t, flags.Parse([]string{"--jfr-settings=custom.jfc"}))

	got, err = p.NewConfigObject(flags)
	require.NoError(t, err)
	assert.Equal(t, &jfr.Options{Settings: "custom.jfc"}, got)
}

func TestProfiler_JVMArgs(t *testing.T) {
	t.Parallel()

	recording := "-XX:StartFlightRecording=name=buildbench,settings=default,dumponexit=true,filename=" +
		filepath.Join("out", "assemble", "assemble.jfr")

	tcs := map[string]struct {
		invoker          profiler.Invoker
		wantInstrumented []string
	}{
		"warm daemon attaches with jcmd": {
			invoker:          profiler.InvokerToolingAPI,
			wantInstrumented: nil,
		},
		"no daemon records from startup": {
			invoker:          profiler.InvokerNoDaemon,
			wantInstrumented: []string{recording},
		},
		"cold daemon records from startup": {
			invoker:          profiler.InvokerColdDaemon,
			wantInstrumented: []string{recording},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := jfr.New()
			s := settings(tc.invoker)

			assert.Equal(t,
				[]string{"-XX:+UnlockDiagnosticVMOptions", "-XX:+DebugNonSafepoints"},
				p.NewJVMArgsCalculator(s).CalculateJVMArgs(nil))
			assert.Equal(t, tc.wantInstrumented, p.NewInstrumentedBuildsJVMArgsCalculator(s).CalculateJVMArgs(nil))
		})
	}
}

func TestController(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("jcmd start and stop", func(t *testing.T) {
		t.Parallel()

		r := &fakeRunner{}
		p := jfr.New()
		p.Runner = r

		ctrl := p.NewController("4242", settings(profiler.InvokerCLI))
		require.NoError(t, ctrl.Start(ctx))
		require.NoError(t, ctrl.Stop(ctx))

		assert.Equal(t, []string{
			"jcmd 4242 JFR.start name=buildbench settings=default",
			"jcmd 4242 JFR.stop name=buildbench filename=" + filepath.Join("out", "assemble", "assemble.jfr"),
		}, r.calls)
	})

	t.Run("runner error", func(t *testing.T) {
		t.Parallel()

		errJcmd := errors.New("no such process")
		p := jfr.New()
		p.Runner = &fakeRunner{err: errJcmd}

		err := p.NewController("4242", settings(profiler.InvokerCLI)).Start(ctx)
		require.ErrorIs(t, err, errJcmd)
	})

	t.Run("nothing to attach to", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			pid     string
			invoker profiler.Invoker
		}{
			{pid: "", invoker: profiler.InvokerCLI},
			{pid: "4242", invoker: profiler.InvokerNoDaemon},
		} {
			r := &fakeRunner{}
			p := jfr.New()
			p.Runner = r

			ctrl := p.NewController(tc.pid, settings(tc.invoker))
			require.NoError(t, ctrl.Start(ctx))
			require.NoError(t, ctrl.Stop(ctx))
			assert.Empty(t, r.calls)
		}
	})
}

func TestExecRunner(t *testing.T) {
	t.Parallel()

	err := jfr.ExecRunner{}.Run(t.Context(), filepath.Join(t.TempDir(), "missing-jcmd"))
	require.ErrorIs(t, err, jfr.ErrCommand)
}
