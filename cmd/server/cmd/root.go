package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type flags struct {
	configFile string
	envFile    string
	addr       string
}

// NewRootCmd builds the employees command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "employees",
		Short: "Employees - HTTP CRUD service for employee records",
		Long: `Employees exposes a single employee resource over HTTP
backed by PostgreSQL or SQLite.

Configuration comes from the environment (APP_ENV, RUN_ADDRESS,
DATABASE_DRIVER, DATABASE_URI, REQUEST_TIMEOUT, SHUTDOWN_TIMEOUT),
an optional .env file and an optional config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&f.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&f.envFile, "env-file", "", "dotenv file (default .env)")
	root.PersistentFlags().StringVar(&f.addr, "addr", "", "listen address, overrides RUN_ADDRESS")

	root.AddCommand(newServeCmd(f))

	return root
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
