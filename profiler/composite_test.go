package profiler_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.jacobcolvin.com/buildbench/log"
	"go.jacobcolvin.com/buildbench/profiler"
	"go.jacobcolvin.com/buildbench/scenario"
)

var errBoom = errors.New("boom")

func newMockProfiler(ctrl *gomock.Controller, name string) *profiler.MockProfiler {
	p := profiler.NewMockProfiler(ctrl)
	p.EXPECT().String().Return(name).AnyTimes()

	return p
}

func testSettings() profiler.ScenarioSettings {
	return profiler.ScenarioSettings{
		Invocation: profiler.InvocationSettings{
			ProjectDir:       "/work/project",
			Profiler:         profiler.None,
			ProfilerOptions:  "global",
			Benchmark:        true,
			OutputDir:        "/work/out",
			Invoker:          profiler.InvokerCLI,
			DryRun:           true,
			ScenarioFile:     "/work/scenarios.yaml",
			Versions:         []string{"8.5", "8.6"},
			Targets:          []string{"assemble"},
			SystemProperties: map[string]string{"org.gradle.caching": "true"},
			GradleUserHome:   "/work/gradle-home",
			WarmUpCount:      2,
			BuildCount:       5,
		},
		Scenario: scenario.Scenario{Name: "assemble", Tasks: []string{"assemble"}},
	}
}

func TestComposite_String(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		names []string
		want  string
	}{
		"no delegates":  {names: nil, want: ""},
		"one delegate":  {names: []string{"jfr"}, want: "jfr"},
		"in order":      {names: []string{"jfr", "buildscan", "pprof"}, want: "jfr, buildscan, pprof"},
		"reverse order": {names: []string{"pprof", "jfr"}, want: "pprof, jfr"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			var delegates []profiler.Profiler
			for _, n := range tc.names {
				delegates = append(delegates, newMockProfiler(ctrl, n))
			}

			assert.Equal(t, tc.want, profiler.NewComposite(delegates).String())
		})
	}
}

func TestComposite_NewConfigObject(t *testing.T) {
	t.Parallel()

	t.Run("one entry per delegate", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

		p1 := newMockProfiler(ctrl, "p1")
		p2 := newMockProfiler(ctrl, "p2")
		gomock.InOrder(
			p1.EXPECT().NewConfigObject(flags).Return("cfg1", nil),
			p2.EXPECT().NewConfigObject(flags).Return(nil, nil),
		)

		c := profiler.NewComposite([]profiler.Profiler{p1, p2})

		got, err := c.NewConfigObject(flags)
		require.NoError(t, err)

		objs, ok := got.(profiler.ConfigObjects)
		require.True(t, ok)
		require.Equal(t, 2, objs.Len())

		d, opts := objs.At(0)
		assert.Equal(t, p1, d)
		assert.Equal(t, "cfg1", opts)

		d, opts = objs.At(1)
		assert.Equal(t, p2, d)
		assert.Nil(t, opts)

		var order []profiler.Profiler
		for d := range objs.All() {
			order = append(order, d)
		}

		assert.Equal(t, []profiler.Profiler{p1, p2}, order)
	})

	t.Run("overwrites previous values", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

		p1 := newMockProfiler(ctrl, "p1")
		gomock.InOrder(
			p1.EXPECT().NewConfigObject(flags).Return("first", nil),
			p1.EXPECT().NewConfigObject(flags).Return("second", nil),
		)

		c := profiler.NewComposite([]profiler.Profiler{p1})

		first, err := c.NewConfigObject(flags)
		require.NoError(t, err)

		_, err = c.NewConfigObject(flags)
		require.NoError(t, err)

		_, opts := c.ConfigObjects().At(0)
		assert.Equal(t, "second", opts)

		// Views are live, not snapshots.
		_, opts = first.(profiler.ConfigObjects).At(0)
		assert.Equal(t, "second", opts)
	})

	t.Run("delegate error stops extraction", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

		p1 := newMockProfiler(ctrl, "p1")
		p2 := newMockProfiler(ctrl, "p2")
		p3 := newMockProfiler(ctrl, "p3")
		p1.EXPECT().NewConfigObject(flags).Return("cfg1", nil)
		p2.EXPECT().NewConfigObject(flags).Return(nil, errBoom)

		c := profiler.NewComposite([]profiler.Profiler{p1, p2, p3})

		_, err := c.NewConfigObject(flags)
		require.ErrorIs(t, err, errBoom)
		assert.ErrorContains(t, err, "p2")

		_, opts := c.ConfigObjects().At(0)
		assert.Equal(t, "cfg1", opts)
	})
}

func TestComposite_SettingsFor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	p1 := newMockProfiler(ctrl, "p1")
	p2 := newMockProfiler(ctrl, "p2")
	c := profiler.NewComposite([]profiler.Profiler{p1, p2})
	base := testSettings()

	t.Run("before configuration", func(t *testing.T) {
		want := base
		want.Invocation.Profiler = p2
		want.Invocation.ProfilerOptions = nil

		assert.Equal(t, want, c.SettingsFor(1, base))
	})

	p1.EXPECT().NewConfigObject(flags).Return("cfg1", nil)
	p2.EXPECT().NewConfigObject(flags).Return("cfg2", nil)

	_, err := c.NewConfigObject(flags)
	require.NoError(t, err)

	for i, tc := range []struct {
		delegate profiler.Profiler
		options  any
	}{
		{delegate: p1, options: "cfg1"},
		{delegate: p2, options: "cfg2"},
	} {
		want := base
		want.Invocation.Profiler = tc.delegate
		want.Invocation.ProfilerOptions = tc.options

		assert.Equal(t, want, c.SettingsFor(i, base))
	}

	// The source settings are untouched.
	assert.Equal(t, testSettings(), base)
}

func TestComposite_NewController(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	setup := func(t *testing.T, n int) (*profiler.Composite, []*profiler.MockController) {
		t.Helper()

		ctrl := gomock.NewController(t)

		delegates := make([]profiler.Profiler, n)
		ctrls := make([]*profiler.MockController, n)

		for i := range n {
			p := newMockProfiler(ctrl, string(rune('a'+i)))
			c := profiler.NewMockController(ctrl)
			p.EXPECT().NewController("42", gomock.Any()).DoAndReturn(
				func(_ string, s profiler.ScenarioSettings) profiler.Controller {
					assert.Equal(t, p, s.Invocation.Profiler)
					assert.Equal(t, "assemble", s.Scenario.Name)

					return c
				})

			delegates[i] = p
			ctrls[i] = c
		}

		return profiler.NewComposite(delegates), ctrls
	}

	t.Run("start in delegate order", func(t *testing.T) {
		t.Parallel()

		c, ctrls := setup(t, 3)
		gomock.InOrder(
			ctrls[0].EXPECT().Start(ctx).Return(nil),
			ctrls[1].EXPECT().Start(ctx).Return(nil),
			ctrls[2].EXPECT().Start(ctx).Return(nil),
		)

		err := c.NewController("42", testSettings()).Start(ctx)
		require.NoError(t, err)
	})

	t.Run("stop in delegate order", func(t *testing.T) {
		t.Parallel()

		c, ctrls := setup(t, 3)
		gomock.InOrder(
			ctrls[0].EXPECT().Stop(ctx).Return(nil),
			ctrls[1].EXPECT().Stop(ctx).Return(nil),
			ctrls[2].EXPECT().Stop(ctx).Return(nil),
		)

		err := c.NewController("42", testSettings()).Stop(ctx)
		require.NoError(t, err)
	})

	t.Run("start failure leaves earlier delegates running", func(t *testing.T) {
		t.Parallel()

		c, ctrls := setup(t, 3)
		gomock.InOrder(
			ctrls[0].EXPECT().Start(ctx).Return(nil),
			ctrls[1].EXPECT().Start(ctx).Return(errBoom),
		)
		// No Start on ctrls[2] and no Stop on ctrls[0].

		err := c.NewController("42", testSettings()).Start(ctx)
		require.ErrorIs(t, err, errBoom)
		assert.EqualError(t, err, "start b: boom")
	})

	t.Run("stop failure aborts remaining stops", func(t *testing.T) {
		t.Parallel()

		c, ctrls := setup(t, 2)
		ctrls[0].EXPECT().Stop(ctx).Return(context.Canceled)

		err := c.NewController("42", testSettings()).Stop(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestComposite_ArgsCalculators(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		expect    func(p *profiler.MockProfiler, args ...string)
		calculate func(c *profiler.Composite, s profiler.ScenarioSettings, args []string) []string
	}{
		"jvm args": {
			expect: func(p *profiler.MockProfiler, args ...string) {
				p.EXPECT().NewJVMArgsCalculator(gomock.Any()).
					Return(profiler.JVMArgsFunc(profiler.AppendArgs(args...)))
			},
			calculate: func(c *profiler.Composite, s profiler.ScenarioSettings, args []string) []string {
				return c.NewJVMArgsCalculator(s).CalculateJVMArgs(args)
			},
		},
		"instrumented builds jvm args": {
			expect: func(p *profiler.MockProfiler, args ...string) {
				p.EXPECT().NewInstrumentedBuildsJVMArgsCalculator(gomock.Any()).
					Return(profiler.JVMArgsFunc(profiler.AppendArgs(args...)))
			},
			calculate: func(c *profiler.Composite, s profiler.ScenarioSettings, args []string) []string {
				return c.NewInstrumentedBuildsJVMArgsCalculator(s).CalculateJVMArgs(args)
			},
		},
		"gradle args": {
			expect: func(p *profiler.MockProfiler, args ...string) {
				p.EXPECT().NewGradleArgsCalculator(gomock.Any()).
					Return(profiler.GradleArgsFunc(profiler.AppendArgs(args...)))
			},
			calculate: func(c *profiler.Composite, s profiler.ScenarioSettings, args []string) []string {
				return c.NewGradleArgsCalculator(s).CalculateGradleArgs(args)
			},
		},
		"instrumented builds gradle args": {
			expect: func(p *profiler.MockProfiler, args ...string) {
				p.EXPECT().NewInstrumentedBuildsGradleArgsCalculator(gomock.Any()).
					Return(profiler.GradleArgsFunc(profiler.AppendArgs(args...)))
			},
			calculate: func(c *profiler.Composite, s profiler.ScenarioSettings, args []string) []string {
				return c.NewInstrumentedBuildsGradleArgsCalculator(s).CalculateGradleArgs(args)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			d1 := newMockProfiler(ctrl, "d1")
			d2 := newMockProfiler(ctrl, "d2")
			tc.expect(d1, "-a")
			tc.expect(d2, "-b", "-c")

			c := profiler.NewComposite([]profiler.Profiler{d1, d2})

			got := tc.calculate(c, testSettings(), []string{})
			assert.Equal(t, []string{"-a", "-b", "-c"}, got)
		})
	}
}

func TestComposite_NoDelegates(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	c := profiler.NewComposite(nil)
	s := testSettings()

	got, err := c.NewConfigObject(pflag.NewFlagSet("test", pflag.ContinueOnError))
	require.NoError(t, err)
	assert.Equal(t, 0, got.(profiler.ConfigObjects).Len())

	ctrl := c.NewController("42", s)
	require.NoError(t, ctrl.Start(ctx))
	require.NoError(t, ctrl.Stop(ctx))

	args := []string{"-x"}
	assert.Equal(t, args, c.NewJVMArgsCalculator(s).CalculateJVMArgs(args))
	assert.Equal(t, args, c.NewInstrumentedBuildsJVMArgsCalculator(s).CalculateJVMArgs(args))
	assert.Equal(t, args, c.NewGradleArgsCalculator(s).CalculateGradleArgs(args))
	assert.Equal(t, args, c.NewInstrumentedBuildsGradleArgsCalculator(s).CalculateGradleArgs(args))
	assert.Empty(t, c.Delegates())
}

func TestComposite_WithLogger(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	var buf bytes.Buffer

	logger, err := (&log.Config{Level: "debug", Format: "json"}).NewLogger(&buf)
	require.NoError(t, err)

	c := profiler.NewComposite([]profiler.Profiler{profiler.None}, profiler.WithLogger(logger))

	ctrl := c.NewController("42", testSettings())
	require.NoError(t, ctrl.Start(ctx))
	require.NoError(t, ctrl.Stop(ctx))

	out := buf.String()
	assert.Contains(t, out, `"msg":"starting profiler"`)
	assert.Contains(t, out, `"msg":"stopping profiler"`)
	assert.Contains(t, out, `"profiler":"none"`)
}

func TestControllers(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	var calls []string

	record := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			calls = append(calls, name)

			return err
		}
	}

	cs := profiler.Controllers{
		profiler.ControllerFuncs{StartFunc: record("start 1", nil), StopFunc: record("stop 1", nil)},
		profiler.ControllerFuncs{StartFunc: record("start 2", errBoom), StopFunc: record("stop 2", nil)},
		profiler.ControllerFuncs{StartFunc: record("start 3", nil), StopFunc: record("stop 3", nil)},
	}

	err := cs.Start(ctx)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"start 1", "start 2"}, calls)

	calls = nil

	err = cs.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"stop 1", "stop 2", "stop 3"}, calls)
}

func TestConfigObjects_Lookup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	p1 := newMockProfiler(ctrl, "JFR")
	p1.EXPECT().NewConfigObject(flags).Return("jfr-options", nil)

	p2 := newMockProfiler(ctrl, "pprof")
	p2.EXPECT().NewConfigObject(flags).Return(nil, nil)

	c := profiler.NewComposite([]profiler.Profiler{p1, p2})

	_, err := c.NewConfigObject(flags)
	require.NoError(t, err)

	got, ok := c.ConfigObjects().Lookup("JFR")
	require.True(t, ok)
	assert.Equal(t, "jfr-options", got)

	got, ok = c.ConfigObjects().Lookup("pprof")
	require.True(t, ok)
	assert.Nil(t, got)

	_, ok = c.ConfigObjects().Lookup("missing")
	assert.False(t, ok)
}
