package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/buildbench/version"
)

func (a *app) newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			info := version.Get()

			if !asJSON {
				_, err := fmt.Fprintln(a.stdout, info.String())
				if err != nil {
					return fmt.Errorf("write version: %w", err)
				}

				return nil
			}

			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("encode version: %w", err)
			}

			_, err = a.stdout.Write(append(out, '\n'))
			if err != nil {
				return fmt.Errorf("write version: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
