package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/buildbench/profiler"
)

// ErrMissingPID indicates that attach was run without --pid.
var ErrMissingPID = errors.New("missing --pid")

func (a *app) newAttachCmd() *cobra.Command {
	var (
		pid      string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Profile a running build process",
		Long: `Start the selected profilers against a running process, wait until
interrupted (or until --duration elapses), then stop them.

The first scenario is used to name the output directory; any others are
ignored. Profilers are always
stopped, even when starting one of them failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pid == "" {
				return ErrMissingPID
			}

			sel, err := a.selectProfiler(cmd)
			if err != nil {
				return err
			}

			scenarios, err := a.scenarios()
			if err != nil {
				return err
			}

			for _, s := range scenarios[1:] {
				a.logger.Debug("ignoring scenario", slog.String("scenario", s.Name))
			}

			settings := profiler.ScenarioSettings{
				Invocation: sel.invocation,
				Scenario:   scenarios[0],
			}

			return a.attach(cmd.Context(), sel.profiler.NewController(pid, settings), duration)
		},
	}

	cmd.Flags().StringVar(&pid, "pid", "", "process ID of the build to profile")
	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long (0: wait for interrupt)")

	return cmd
}

// attach starts ctrl, waits for ctx to be done or for d to elapse, then stops
// ctrl. Stop runs even when Start fails, with a context that is not
// canceled.
func (a *app) attach(ctx context.Context, ctrl profiler.Controller, d time.Duration) (err error) {
	stopCtx := context.WithoutCancel(ctx)

	defer func() {
		a.logger.Info("stopping profilers")

		stopErr := ctrl.Stop(stopCtx)
		if stopErr != nil {
			err = errors.Join(err, stopErr)
		}
	}()

	a.logger.Info("starting profilers")

	err = ctrl.Start(ctx)
	if err != nil {
		return err
	}

	wait := ctx
	if d > 0 {
		var cancel context.CancelFunc

		wait, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	a.logger.Info("profiling", slog.Duration("duration", d))

	<-wait.Done()

	return nil
}
