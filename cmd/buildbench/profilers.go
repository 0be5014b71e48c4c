package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) newProfilersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profilers",
		Short: "List the available profilers",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)

			for _, name := range a.profilers.Registry.Names() {
				fmt.Fprintf(w, "%s\t%s\n", name, a.profilers.Registry[name]())
			}

			err := w.Flush()
			if err != nil {
				return fmt.Errorf("write profilers: %w", err)
			}

			return nil
		},
	}
}
