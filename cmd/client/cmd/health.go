package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server and its database are up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Health(cmd.Context()); err != nil {
				return fmt.Errorf("server unhealthy: %w", err)
			}
			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}
