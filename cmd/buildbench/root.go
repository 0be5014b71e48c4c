package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/buildbench/log"
	"go.jacobcolvin.com/buildbench/profiler"
	"go.jacobcolvin.com/buildbench/profiler/builtin"
	"go.jacobcolvin.com/buildbench/scenario"
)

// ErrNoScenario indicates that neither a scenario file nor tasks were given.
var ErrNoScenario = errors.New("no scenario: set --scenario-file or --task")

// app holds the state shared by all subcommands.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
	log        *log.Config
	profilers  *profiler.Config
	invocation *invocationConfig
	configFile string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout:     stdout,
		stderr:     stderr,
		logger:     slog.New(slog.DiscardHandler),
		log:        log.NewConfig(),
		profilers:  profiler.NewConfig(builtin.Registry()),
		invocation: newInvocationConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "buildbench",
		Short: "Profile benchmarked Gradle builds",
		Long: `buildbench attaches one or more profilers to benchmarked Gradle builds.
Select profilers with --profile; several profilers are combined and run
together in the order given.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML, JSON or TOML file providing flag defaults")
	a.log.RegisterFlags(flags)
	a.profilers.RegisterFlags(flags)
	a.invocation.RegisterFlags(flags)

	rootCmd.AddCommand(
		a.newArgsCmd(),
		a.newAttachCmd(),
		a.newProfilersCmd(),
		a.newSchemaCmd(),
		a.newVersionCmd(),
	)

	for _, r := range []interface{ RegisterCompletions(*cobra.Command) error }{
		a.log, a.profilers, a.invocation,
	} {
		err := r.RegisterCompletions(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	err := applyConfig(cmd.Flags(), a.configFile)
	if err != nil {
		return err
	}

	logger, err := a.log.NewLogger(a.stderr)
	if err != nil {
		return err
	}

	a.logger = logger

	return nil
}

// selection is the configured profiler and the invocation settings built
// from the flags, which carry its configuration object.
type selection struct {
	profiler   profiler.Profiler
	invocation profiler.InvocationSettings
}

func (a *app) selectProfiler(cmd *cobra.Command) (selection, error) {
	p, err := a.profilers.NewProfiler(profiler.WithLogger(a.logger))
	if err != nil {
		return selection{}, err
	}

	opts, err := p.NewConfigObject(cmd.Flags())
	if err != nil {
		return selection{}, err
	}

	inv, err := a.invocation.Settings(p, opts)
	if err != nil {
		return selection{}, err
	}

	a.logger.Debug("selected profiler",
		slog.String("profiler", p.String()),
		slog.String("invoker", string(inv.Invoker)),
		slog.Any("versions", inv.Versions),
	)

	return selection{profiler: p, invocation: inv}, nil
}

// scenarios returns the scenarios from the scenario file, or a single
// scenario named "default" running the tasks given with --task. The result
// is never empty.
func (a *app) scenarios() ([]scenario.Scenario, error) {
	if a.invocation.ScenarioFile != "" {
		scenarios, err := scenario.Load(a.invocation.ScenarioFile)
		if err != nil {
			return nil, err
		}

		if len(scenarios) == 0 {
			return nil, fmt.Errorf("%w: %s defines no scenarios", ErrNoScenario, a.invocation.ScenarioFile)
		}

		return scenarios, nil
	}

	if len(a.invocation.Targets) == 0 {
		return nil, ErrNoScenario
	}

	return []scenario.Scenario{{
		Name:  "default",
		Tasks: a.invocation.Targets,
	}}, nil
}
