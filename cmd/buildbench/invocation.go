package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/buildbench/profiler"
)

// currentVersion selects the Gradle version the project's wrapper uses.
const currentVersion = "current"

// ErrInvalidVersion indicates a --gradle-version value that is not a version.
var ErrInvalidVersion = errors.New("invalid Gradle version")

// invocationFlags holds CLI flag names for invocation settings.
type invocationFlags struct {
	ProjectDir       string
	OutputDir        string
	Invoker          string
	ScenarioFile     string
	GradleUserHome   string
	Versions         string
	Targets          string
	SystemProperties string
	WarmUps          string
	Iterations       string
	Benchmark        string
	DryRun           string
}

// invocationConfig holds CLI flag values from which [profiler.InvocationSettings]
// are built.
type invocationConfig struct {
	SystemProperties map[string]string
	Flags            invocationFlags
	ProjectDir       string
	OutputDir        string
	Invoker          string
	ScenarioFile     string
	GradleUserHome   string
	Versions         []string
	Targets          []string
	WarmUps          int
	Iterations       int
	Benchmark        bool
	DryRun           bool
}

func newInvocationConfig() *invocationConfig {
	return &invocationConfig{
		Flags: invocationFlags{
			ProjectDir:       "project-dir",
			OutputDir:        "output-dir",
			Invoker:          "invoker",
			ScenarioFile:     "scenario-file",
			GradleUserHome:   "gradle-user-home",
			Versions:         "gradle-version",
			Targets:          "task",
			SystemProperties: "system-property",
			WarmUps:          "warmups",
			Iterations:       "iterations",
			Benchmark:        "benchmark",
			DryRun:           "dry-run",
		},
	}
}

func (c *invocationConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.ProjectDir, c.Flags.ProjectDir, ".", "directory of the build to benchmark")
	flags.StringVar(&c.OutputDir, c.Flags.OutputDir, "profile-out", "directory for profiler output")
	flags.StringVar(&c.Invoker, c.Flags.Invoker, string(profiler.InvokerToolingAPI),
		fmt.Sprintf("how builds are run, one of: %s", strings.Join(profiler.GetAllInvokerStrings(), ", ")))
	flags.StringVar(&c.ScenarioFile, c.Flags.ScenarioFile, "", "YAML file defining scenarios")
	flags.StringVar(&c.GradleUserHome, c.Flags.GradleUserHome, "gradle-user-home", "Gradle user home for benchmarked builds")
	flags.StringSliceVar(&c.Versions, c.Flags.Versions, []string{currentVersion}, "Gradle versions to run (repeatable)")
	flags.StringSliceVarP(&c.Targets, c.Flags.Targets, "t", nil, "tasks to run when no scenario file is given")
	flags.StringToStringVarP(&c.SystemProperties, c.Flags.SystemProperties, "D", nil, "system properties passed to the build")
	flags.IntVar(&c.WarmUps, c.Flags.WarmUps, 0, "warm-up builds per scenario (0: invoker default)")
	flags.IntVar(&c.Iterations, c.Flags.Iterations, 0, "measured builds per scenario (0: invoker default)")
	flags.BoolVar(&c.Benchmark, c.Flags.Benchmark, false, "collect benchmark results")
	flags.BoolVar(&c.DryRun, c.Flags.DryRun, false, "verify the setup with a single build per scenario")
}

func (c *invocationConfig) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Invoker,
		cobra.FixedCompletions(profiler.GetAllInvokerStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Invoker, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.ScenarioFile,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ScenarioFile, err)
	}

	return nil
}

// Settings builds the invocation settings for p.
func (c *invocationConfig) Settings(p profiler.Profiler, options any) (profiler.InvocationSettings, error) {
	inv, err := profiler.ParseInvoker(c.Invoker)
	if err != nil {
		return profiler.InvocationSettings{}, err
	}

	versions, err := normalizeVersions(c.Versions)
	if err != nil {
		return profiler.InvocationSettings{}, err
	}

	warmUps, builds := c.WarmUps, c.Iterations
	if c.DryRun {
		warmUps, builds = 1, 1
	}

	return profiler.InvocationSettings{
		Profiler:         p,
		ProfilerOptions:  options,
		SystemProperties: c.SystemProperties,
		ProjectDir:       c.ProjectDir,
		OutputDir:        c.OutputDir,
		Invoker:          inv,
		ScenarioFile:     c.ScenarioFile,
		GradleUserHome:   c.GradleUserHome,
		Versions:         versions,
		Targets:          c.Targets,
		WarmUpCount:      warmUps,
		BuildCount:       builds,
		Benchmark:        c.Benchmark,
		DryRun:           c.DryRun,
	}, nil
}

// normalizeVersions validates versions and orders them oldest first, with
// "current" last. Duplicates are dropped.
func normalizeVersions(versions []string) ([]string, error) {
	var (
		parsed  []*semver.Version
		current bool
	)

	for _, v := range versions {
		v = strings.TrimSpace(v)
		if v == currentVersion {
			current = true

			continue
		}

		sv, err := semver.NewVersion(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, v, err)
		}

		if !slices.ContainsFunc(parsed, sv.Equal) {
			parsed = append(parsed, sv)
		}
	}

	slices.SortFunc(parsed, func(a, b *semver.Version) int {
		return a.Compare(b)
	})

	out := make([]string, 0, len(parsed)+1)
	for _, v := range parsed {
		out = append(out, v.Original())
	}

	if current {
		out = append(out, currentVersion)
	}

	return out, nil
}
