package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/buildbench/profiler"
)

// scenarioArgs lists the arguments builds of one scenario run with.
type scenarioArgs struct {
	Scenario               string   `yaml:"scenario"`
	Profiler               string   `yaml:"profiler"`
	JVMArgs                []string `yaml:"jvm-args"`
	GradleArgs             []string `yaml:"gradle-args"`
	InstrumentedJVMArgs    []string `yaml:"instrumented-jvm-args"`
	InstrumentedGradleArgs []string `yaml:"instrumented-gradle-args"`
}

func (a *app) newArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "Print the JVM and Gradle arguments of each scenario",
		Long: `Print, for every scenario, the JVM and Gradle arguments builds run with.
Instrumented builds are the measured builds that the selected profilers
observe; warm-up builds only receive the plain arguments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := a.selectProfiler(cmd)
			if err != nil {
				return err
			}

			scenarios, err := a.scenarios()
			if err != nil {
				return err
			}

			out := make([]scenarioArgs, 0, len(scenarios))
			for _, s := range scenarios {
				out = append(out, buildArgs(profiler.ScenarioSettings{
					Invocation: sel.invocation,
					Scenario:   s,
				}))
			}

			b, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("encode arguments: %w", err)
			}

			_, err = a.stdout.Write(b)
			if err != nil {
				return fmt.Errorf("write arguments: %w", err)
			}

			return nil
		},
	}
}

// buildArgs computes the arguments of the scenario in settings. Instrumented
// builds get the arguments of every build followed by the instrumented-only
// arguments.
func buildArgs(settings profiler.ScenarioSettings) scenarioArgs {
	p := settings.Invocation.Profiler

	jvmArgs := p.NewJVMArgsCalculator(settings).CalculateJVMArgs(slices.Clone(settings.Scenario.JVMArgs))
	gradleArgs := p.NewGradleArgsCalculator(settings).CalculateGradleArgs(baseGradleArgs(settings))

	return scenarioArgs{
		Scenario:   settings.Scenario.DisplayName(),
		Profiler:   p.String(),
		JVMArgs:    jvmArgs,
		GradleArgs: gradleArgs,
		InstrumentedJVMArgs: p.NewInstrumentedBuildsJVMArgsCalculator(settings).
			CalculateJVMArgs(slices.Clone(jvmArgs)),
		InstrumentedGradleArgs: p.NewInstrumentedBuildsGradleArgsCalculator(settings).
			CalculateGradleArgs(slices.Clone(gradleArgs)),
	}
}

// baseGradleArgs returns the system properties of the invocation and
// scenario as -D arguments, sorted by key, followed by the scenario's Gradle
// arguments. Scenario properties override invocation properties.
func baseGradleArgs(settings profiler.ScenarioSettings) []string {
	props := maps.Clone(settings.Invocation.SystemProperties)
	if props == nil {
		props = map[string]string{}
	}

	maps.Copy(props, settings.Scenario.SystemProperties)

	args := make([]string, 0, len(props)+len(settings.Scenario.GradleArgs))
	for _, k := range slices.Sorted(maps.Keys(props)) {
		args = append(args, "-D"+k+"="+props[k])
	}

	return append(args, settings.Scenario.GradleArgs...)
}

